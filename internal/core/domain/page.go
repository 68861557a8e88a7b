package domain

// Substitution is a literal find/replace pair applied to the raw template text.
type Substitution struct {
	Pattern     string
	Replacement string
}

// RenderConfig is the configuration of one rendered page.
// It is treated as immutable for the duration of a render.
type RenderConfig struct {
	// Template is the path of the source html file.
	Template string
	// Target is the output file name or path. Defaults to the template's base name.
	Target string
	// Prefix is prepended to every injected asset url.
	Prefix string
	// Attrs are extra attribute tokens placed on every injected script tag.
	Attrs []string
	// ReplaceVars are applied in order before tag injection.
	ReplaceVars []Substitution
}

// Validate checks that the page names at least a template or a target.
func (c RenderConfig) Validate() error {
	if c.Template == "" && c.Target == "" {
		return ErrConfiguration
	}
	return nil
}

// Name returns a human readable identifier for the page.
func (c RenderConfig) Name() string {
	if c.Target != "" {
		return c.Target
	}
	return c.Template
}

// RenderResult describes the html file written by one render.
type RenderResult struct {
	// Path is the absolute path of the written file.
	Path string
	// Scripts are the entry files injected as script tags.
	Scripts []string
	// Stylesheets are the css files injected as link tags.
	Stylesheets []string
	// Skipped are files that were not injected because the template lacks the anchor tag.
	Skipped []string
	// Size is the number of bytes written.
	Size int
	// Checksum is the hex encoded xxhash64 of the written bytes.
	Checksum string
}
