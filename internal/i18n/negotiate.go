package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when no preference matches a bundled locale.
const DefaultLang = "en"

// supported lists bundled locales; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Chinese,
}

var matcher = language.NewMatcher(supported)

// Languages returns the bundled locale codes.
func Languages() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		out[i] = base.String()
	}
	return out
}

// Negotiate picks the best bundled locale for the given preferences.
// Preferences may be BCP 47 tags, Accept-Language lists or POSIX locale
// values such as "zh_CN.UTF-8". Empty preferences are skipped.
func Negotiate(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		p = normalizePOSIX(p)
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return DefaultLang
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}
	base, _ := supported[index].Base()
	return base.String()
}

// normalizePOSIX turns "zh_CN.UTF-8@euro" into "zh-CN". The C and POSIX
// locales carry no language preference. Accept-Language lists pass through.
func normalizePOSIX(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",;") {
		return s
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
