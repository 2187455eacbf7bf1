// Package googleai implements ai.Responder and ai.Provider on top of
// Google Gemini models via langchaingo.
package googleai
