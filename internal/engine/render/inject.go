package render

import "strings"

const (
	headCloseTag = "</head>"
	bodyCloseTag = "</body>"
)

// Injection lists the tags to place into a template.
type Injection struct {
	// Scripts are entry files. Only .js files become script tags.
	Scripts []string
	// Stylesheets are bundle files. Only .css files become link tags.
	Stylesheets []string
	// Prefix is the user supplied url prefix.
	Prefix string
	// AssetPrefix is the relative way from the page to the bundle directory.
	AssetPrefix string
	// Attrs are placed verbatim on every script tag.
	Attrs []string
}

// Injected reports which files ended up in the page.
type Injected struct {
	Scripts     []string
	Stylesheets []string
	// Skipped files had no anchor to be placed before.
	Skipped []string
}

// Inject inserts link tags before the last </head> and script tags before the last </body>.
//
// Tags of one kind are separated by newlines and the last one sits directly before the
// anchor. Anchors are matched case-sensitively. A template without an anchor is left untouched
// for that kind of tag. Injecting twice duplicates the tags.
func Inject(tmpl string, in Injection) (string, Injected) {
	var res Injected

	stylesheets := filterExt(in.Stylesheets, cssExt)
	if len(stylesheets) > 0 {
		var b strings.Builder
		for i, name := range stylesheets {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeLinkTag(&b, in.Prefix+in.AssetPrefix+name)
		}
		var ok bool
		if tmpl, ok = insertBeforeLast(tmpl, headCloseTag, b.String()); ok {
			res.Stylesheets = stylesheets
		} else {
			res.Skipped = append(res.Skipped, stylesheets...)
		}
	}

	scripts := filterExt(in.Scripts, jsExt)
	if len(scripts) > 0 {
		var b strings.Builder
		for i, name := range scripts {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeScriptTag(&b, in.Attrs, in.AssetPrefix+in.Prefix+name)
		}
		var ok bool
		if tmpl, ok = insertBeforeLast(tmpl, bodyCloseTag, b.String()); ok {
			res.Scripts = scripts
		} else {
			res.Skipped = append(res.Skipped, scripts...)
		}
	}

	return tmpl, res
}

func insertBeforeLast(s, anchor, insert string) (string, bool) {
	i := strings.LastIndex(s, anchor)
	if i < 0 {
		return s, false
	}
	return s[:i] + insert + s[i:], true
}

func writeLinkTag(b *strings.Builder, href string) {
	b.WriteString(`<link rel="stylesheet" type="text/css" href="`)
	b.WriteString(href)
	b.WriteString(`">`)
}

func writeScriptTag(b *strings.Builder, attrs []string, src string) {
	b.WriteString("<script ")
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		b.WriteString(attr)
		b.WriteByte(' ')
	}
	b.WriteString(`src="`)
	b.WriteString(src)
	b.WriteString(`"></script>`)
}
