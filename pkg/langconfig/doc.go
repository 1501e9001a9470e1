// Package langconfig supplies the ordered list of languages a localized field may hold.
//
// The list is made of required languages followed by optional ones. The first
// language is the default and acts as the fallback during resolution. An empty
// configuration resolves to a single "en" language.
//
// # Providers
//
// Resolution reads the configuration through a Provider on every call, so
// changes made by the host become visible without any invalidation step:
//
//	p := langconfig.Static(langconfig.Config{
//		Required: []string{"en"},
//		Optional: []string{"de", "ar"},
//	})
//	p.Languages().AllLanguages() // [en de ar]
//
// # Environment
//
// Config is tagged for caarlos0/env. Lists are comma-separated:
//
//	LANGUAGES_REQUIRED=en
//	LANGUAGES_OPTIONAL=de,ar
//
//	cfg, err := langconfig.FromEnv()
//
// EnvProvider re-reads the environment on every call. LoadDotEnv populates the
// environment from .env files first.
//
// # Files
//
// Load reads YAML, TOML or JSON files from an fs.FS:
//
//	# languages.yaml
//	required: [en]
//	optional: [de, ar]
//
//	cfg, err := langconfig.Load(os.DirFS("config"), "languages.yaml")
package langconfig
