package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Widget Errors (E001-E039)
	// ============================================

	"E001": {
		Category: CategoryWidget,
		Message:  "Invalid event handler",
		Detail:   "A listener was registered with a nil handler. Every listener needs a callable handler.",
		DocURL:   "https://litkit.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryWidget,
		Message:  "Widget not mounted",
		Detail:   "The widget was used before Mount was called, or after Unmount.",
		DocURL:   "https://litkit.dev/docs/errors/E002",
	},

	// ============================================
	// Surface Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategorySurface,
		Message:  "Surface apply failed",
		Detail:   "The rendering surface rejected a batch of patches. The widget keeps its previous tree and retries on the next render.",
		DocURL:   "https://litkit.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategorySurface,
		Message:  "Modal transition failed",
		Detail:   "The platform modal refused to open or close. The dialog state was rolled back.",
		DocURL:   "https://litkit.dev/docs/errors/E041",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The litkit configuration file could not be read or parsed.",
		DocURL:   "https://litkit.dev/docs/errors/E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   "https://litkit.dev/docs/errors/E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No litkit.json or litkit.yaml was found in the project directory.",
		DocURL:   "https://litkit.dev/docs/errors/E141",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid command argument",
		Detail:   "A command-line argument could not be parsed.",
		DocURL:   "https://litkit.dev/docs/errors/E160",
	},
}

// Register adds or replaces an error template. Intended for tools built on
// top of litkit that want their own codes in the same format.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
