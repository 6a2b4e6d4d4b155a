package draftify

// FrontEnd selects how markup is parsed into a node tree.
type FrontEnd int

const (
	// FrontEndScanner is the bundled HTML scanner (default).
	FrontEndScanner FrontEnd = iota
	// FrontEndHTML is the HTML5 parser from golang.org/x/net/html.
	FrontEndHTML
	// FrontEndMarkdown parses Markdown with goldmark.
	FrontEndMarkdown
)

// String returns the string representation of FrontEnd.
func (f FrontEnd) String() string {
	switch f {
	case FrontEndScanner:
		return "scanner"
	case FrontEndHTML:
		return "html"
	case FrontEndMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ConvertOptions holds options for conversion.
type ConvertOptions struct {
	Strict          bool
	Config          *Config
	KeyGenerator    KeyGenerator
	DefaultBlockTag string
	FrontEnd        FrontEnd
	OnWarning       func(Warning)
	ImageDir        string
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithStrict sets whether structural violations are fatal.
func WithStrict(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Strict = enable
	}
}

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithKeyGenerator sets the block key generator.
func WithKeyGenerator(gen KeyGenerator) Option {
	return func(opts *ConvertOptions) {
		opts.KeyGenerator = gen
	}
}

// WithDefaultBlockTag sets the tag wrapped around orphan inline content.
func WithDefaultBlockTag(tag string) Option {
	return func(opts *ConvertOptions) {
		opts.DefaultBlockTag = tag
	}
}

// WithFrontEnd selects the markup parser.
func WithFrontEnd(f FrontEnd) Option {
	return func(opts *ConvertOptions) {
		opts.FrontEnd = f
	}
}

// WithWarningHandler receives lenient-mode warnings instead of Logger.
func WithWarningHandler(fn func(Warning)) Option {
	return func(opts *ConvertOptions) {
		opts.OnWarning = fn
	}
}

// WithImageDir fills missing image dimensions from local files under dir.
func WithImageDir(dir string) Option {
	return func(opts *ConvertOptions) {
		opts.ImageDir = dir
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config:   DefaultConfig(),
		FrontEnd: FrontEndScanner,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// config merges the per-call overrides into a copy of the base config.
func (o *ConvertOptions) config() *Config {
	base := o.Config
	if base == nil {
		base = DefaultConfig()
	}
	c := *base
	if o.KeyGenerator != nil {
		c.KeyGenerator = o.KeyGenerator
	}
	if o.DefaultBlockTag != "" {
		c.DefaultBlockTag = o.DefaultBlockTag
	}
	if o.OnWarning != nil {
		c.OnWarning = o.OnWarning
	}
	return &c
}
