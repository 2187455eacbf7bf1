// Package ai defines the text-generation abstractions used by the
// assistant.
//
// The package contains only interfaces and configuration; concrete
// implementations live in subpackages:
//   - googleai: Gemini-backed generation via langchaingo
//   - mock: deterministic test doubles
package ai
