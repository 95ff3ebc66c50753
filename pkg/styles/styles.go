package styles

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token keys read from theme manifests.
const (
	TokenDangerBorder     = "danger.border"
	TokenDangerShadow     = "danger.shadow"
	TokenSuccessBorder    = "success.border"
	TokenSuccessShadow    = "success.shadow"
	TokenNoticeColor      = "notice.color"
	TokenNoticeBackground = "notice.background"
	TokenNoticeClasses    = "notice.classes"
)

// Styles is the set of visual cues used by the presenters.
type Styles struct {
	ErrorBorder      string
	ErrorShadow      string
	SuccessBorder    string
	SuccessShadow    string
	NoticeColor      string
	NoticeBackground string
	NoticeClasses    []string
}

// Default returns the built-in bootstrap-like palette.
func Default() Styles {
	return Styles{
		ErrorBorder:      "red",
		ErrorShadow:      "0 0 0 0.3rem rgba(255, 0, 0, 0.25)",
		SuccessBorder:    "#198754",
		SuccessShadow:    "0 0 0 0.3rem rgba(25, 135, 84, 0.25)",
		NoticeColor:      "#198754",
		NoticeBackground: "rgba(25, 135, 84, 0.25)",
		NoticeClasses:    []string{"text-center", "mt-2", "p-2", "rounded"},
	}
}

// WithTokens returns a copy of s with the non-blank tokens applied.
func (s Styles) WithTokens(tokens map[string]string) Styles {
	out := s
	out.NoticeClasses = append([]string(nil), s.NoticeClasses...)

	set := func(dst *string, key string) {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			*dst = value
		}
	}
	set(&out.ErrorBorder, TokenDangerBorder)
	set(&out.ErrorShadow, TokenDangerShadow)
	set(&out.SuccessBorder, TokenSuccessBorder)
	set(&out.SuccessShadow, TokenSuccessShadow)
	set(&out.NoticeColor, TokenNoticeColor)
	set(&out.NoticeBackground, TokenNoticeBackground)
	if classes := strings.Fields(tokens[TokenNoticeClasses]); len(classes) > 0 {
		out.NoticeClasses = classes
	}
	return out
}

// Tokens returns the styles as theme tokens.
func (s Styles) Tokens() map[string]string {
	return map[string]string{
		TokenDangerBorder:     s.ErrorBorder,
		TokenDangerShadow:     s.ErrorShadow,
		TokenSuccessBorder:    s.SuccessBorder,
		TokenSuccessShadow:    s.SuccessShadow,
		TokenNoticeColor:      s.NoticeColor,
		TokenNoticeBackground: s.NoticeBackground,
		TokenNoticeClasses:    strings.Join(s.NoticeClasses, " "),
	}
}

// FromManifest resolves styles from a theme manifest. Variant tokens take
// precedence over the manifest's base tokens.
func FromManifest(manifest *theme.Manifest, variant string) Styles {
	out := Default()
	if manifest == nil {
		return out
	}
	out = out.WithTokens(manifest.Tokens)
	if variant = strings.TrimSpace(variant); variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			out = out.WithTokens(v.Tokens)
		}
	}
	return out
}

// FromSelector asks selector for a theme and resolves its styles.
func FromSelector(selector theme.ThemeSelector, name, variant string) (Styles, error) {
	if selector == nil {
		return Default(), nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Styles{}, err
	}
	if selection == nil {
		return Default(), nil
	}
	return FromManifest(selection.Manifest, selection.Variant), nil
}
