package lang

import (
	"fmt"

	"golang.org/x/text/language"
)

// codeForBase maps ISO 639-1 base language codes to engine traineddata
// codes. Chinese is handled separately because the engine splits it by
// script rather than by region.
var codeForBase = map[string]string{
	"af": "afr",
	"ar": "ara",
	"bg": "bul",
	"bn": "ben",
	"ca": "cat",
	"cs": "ces",
	"da": "dan",
	"de": "deu",
	"el": "ell",
	"en": "eng",
	"es": "spa",
	"et": "est",
	"fa": "fas",
	"fi": "fin",
	"fr": "fra",
	"he": "heb",
	"hi": "hin",
	"hr": "hrv",
	"hu": "hun",
	"id": "ind",
	"it": "ita",
	"ja": "jpn",
	"ko": "kor",
	"lt": "lit",
	"lv": "lav",
	"ms": "msa",
	"nb": "nor",
	"nl": "nld",
	"no": "nor",
	"pl": "pol",
	"pt": "por",
	"ro": "ron",
	"ru": "rus",
	"sk": "slk",
	"sl": "slv",
	"sr": "srp",
	"sv": "swe",
	"ta": "tam",
	"te": "tel",
	"th": "tha",
	"tr": "tur",
	"uk": "ukr",
	"vi": "vie",
}

// tagForCode is the reverse mapping used when enumerating installed
// languages. Codes the engine ships that have no tag equivalent (such as
// the orientation model "osd") are passed through unchanged by Tag.
var tagForCode = map[string]string{
	"chi_sim":      "zh-Hans",
	"chi_sim_vert": "zh-Hans",
	"chi_tra":      "zh-Hant",
	"chi_tra_vert": "zh-Hant",
}

func init() {
	for base, code := range codeForBase {
		if _, ok := tagForCode[code]; !ok {
			tagForCode[code] = base
		}
	}
}

// Resolve converts a BCP-47 language tag to the engine traineddata code.
// It fails if the tag is malformed or names a language this library cannot
// map to an engine model.
func Resolve(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}

	base, _ := parsed.Base()

	// Chinese models are split by script, not by region.
	if base.String() == "zh" {
		script, _ := parsed.Script()
		if script.String() == "Hant" {
			return "chi_tra", nil
		}
		return "chi_sim", nil
	}

	code, ok := codeForBase[base.String()]
	if !ok {
		return "", fmt.Errorf("unsupported language tag %q", tag)
	}
	return code, nil
}

// Tag converts an engine traineddata code to a BCP-47 tag. Codes with no
// known tag equivalent are returned unchanged.
func Tag(code string) string {
	if tag, ok := tagForCode[code]; ok {
		return tag
	}
	return code
}
