// Package lang maps between BCP-47 language tags and the traineddata codes
// used by the recognition engine.
//
// Callers identify languages with standard locale tags such as "en-US" or
// "zh-Hans-CN". The engine identifies its trained models with ISO 639-2/T
// derived codes such as "eng" or "chi_sim". [Resolve] converts a tag to the
// engine code; [Tag] converts an engine code back to a canonical tag for
// reporting which languages are installed.
package lang
