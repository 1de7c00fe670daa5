package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/ariaid/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Generation Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryGeneration,
		Message:  "Empty component name",
		Detail:   "IDs are composed from a component name; an empty name or one with no letters or digits cannot produce a readable ID.",
		DocURL:   docBase + "E001",
	},
	"E002": {
		Category: CategoryGeneration,
		Message:  "Empty purpose",
		Detail:   "Every ID needs a purpose such as \"input\" or \"label\" to stay distinct within its bundle.",
		DocURL:   docBase + "E002",
	},

	// ============================================
	// Hydration Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryHydration,
		Message:  "Non-deterministic ID detected",
		Detail:   "The ID contains a random value, timestamp or UUID, so the client will not reproduce it during hydration.",
		DocURL:   docBase + "E010",
	},
	"E013": {
		Category: CategoryHydration,
		Message:  "Hydration ID mismatch",
		Detail:   "The two render passes assigned different IDs. Calls to the allocator must happen in the same order on server and client.",
		DocURL:   docBase + "E013",
	},

	// ============================================
	// Accessibility Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryAccessibility,
		Message:  "Duplicate ID",
		Detail:   "More than one element carries the same id, so ARIA references are ambiguous.",
		DocURL:   docBase + "E020",
	},
	"E021": {
		Category: CategoryAccessibility,
		Message:  "Dangling ARIA reference",
		Detail:   "A label or aria-* attribute names an element ID that is not in the document.",
		DocURL:   docBase + "E021",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   docBase + "E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No ariaid.json or ariaid.yaml was found.",
		DocURL:   docBase + "E141",
	},

	// ============================================
	// CLI Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		DocURL:   docBase + "E150",
	},
	"E151": {
		Category: CategoryCLI,
		Message:  "Cannot read input",
		DocURL:   docBase + "E151",
	},
	"E152": {
		Category: CategoryCLI,
		Message:  "Audit failed",
		Detail:   "The audited document has issues.",
		DocURL:   docBase + "E152",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
