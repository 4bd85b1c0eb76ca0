package llm

import "fmt"

func keywordPrompt(question string) string {
	return fmt.Sprintf(`다음은 문서 검색용 키워드를 생성하는 작업이야.
❗️절대 설명하지 말고, 쉼표로 구분된 키워드 목록만 생성해.

규칙:
- 질문에 명시된 연도가 있을 때만 포함해. 없으면 연도는 절대 넣지 마.
- 연도는 항상 4자리 숫자 (예: '23년도' → '2023')
- 월,일이 들어가면 앞에 숫자만 추출해줘
- HTML 태그, 특수문자, 개행문자(\n), 따옴표 등은 절대 포함하지 마
- 출력은 예: 키워드1, 키워드2, 키워드3 형식이어야 함

질문: %s

키워드:`, question)
}

func summaryPrompt(content, question string) string {
	base := `다음은 뉴스 기사입니다. 본문의 핵심 내용을 3~5문장으로 요약하세요.

조건:
- 문장 반복 금지
- "요약" 이라는 단어를 사용 금지
- 문법과 어휘를 유연하게
`
	if question != "" {
		base += fmt.Sprintf("- 질문과 관련된 내용을 우선하세요: %s\n", question)
	}
	return base + fmt.Sprintf("\n[본문]\n%s\n", content)
}
