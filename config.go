package main

// Default configuration values
const (
	DefaultQdrantHost = "localhost"
	DefaultQdrantPort = 6333
	DefaultCollection = "newsdesk_articles"
)
