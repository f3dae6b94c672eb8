package config

const (
	defaultTopicsPath      = "public/data/versiculos_por_tema.json"
	defaultTranslationPath = "public/data/nvi.json"
	defaultEnrichedPath    = "public/data/versiculos_por_tema_com_texto.json"
	defaultBibleRoot       = "public/data/bible"
	defaultLogLevel        = "info"
	defaultLogFormat       = "auto"
)

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Topics:      defaultTopicsPath,
			Translation: defaultTranslationPath,
			Enriched:    defaultEnrichedPath,
			BibleRoot:   defaultBibleRoot,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
