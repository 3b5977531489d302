// Package openai implements the ai interfaces against Azure OpenAI
// deployments using langchaingo's OpenAI-compatible client.
package openai
