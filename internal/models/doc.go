// Package models provides functionality for listing OpenAI chat models
// usable for noun translation, so users can discover what their API key
// gives them access to.
package models
