package errors

import "slices"

// ErrorTemplate defines a registered code.
type ErrorTemplate struct {
	Category Category
	Severity Severity
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/flow/"

// registry maps codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Warnings (W001-W099)
	// ============================================

	"W001": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  `Both "in" and "of" provided; "in" will be used`,
		Detail:   "For received a mapping source and a sequence source. The mapping source selects mapping mode even when it is nil or empty.",
		DocURL:   docBase + "W001",
	},
	"W002": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "No render function provided",
		Detail:   "For needs a render function taking the element and its index or key. Nothing is rendered without one.",
		DocURL:   docBase + "W002",
	},
	"W003": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  `Both "empty" prop and Empty slot provided; "empty" will be used`,
		Detail:   "The WithEmpty prop always takes precedence over an Empty slot.",
		DocURL:   docBase + "W003",
	},
	"W004": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "Both getter and value provided; getter will be used",
		Detail:   "A condition, switch value or For source was given both directly and as a getter. The getter is evaluated and the direct value is ignored.",
		DocURL:   docBase + "W004",
	},
	"W005": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "No render function or Then slot provided",
		Detail:   "If needs a Then slot or a render function for its truthy branch. Nothing is rendered without one.",
		DocURL:   docBase + "W005",
	},
	"W006": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "No Case or Default slot provided",
		Detail:   "Switch has no branches to choose from and renders nothing.",
		DocURL:   docBase + "W006",
	},
	"W007": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "Multiple Default slots found",
		Detail:   "Only the first Default slot is used. The others are ignored.",
		DocURL:   docBase + "W007",
	},
	"W008": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  "No function child provided",
		Detail:   "Let needs a render function taking the bound value. Nothing is rendered without one.",
		DocURL:   docBase + "W008",
	},
	"W009": {
		Category: CategoryRender,
		Severity: SeverityWarning,
		Message:  `Both "else" prop and Else slot provided; "else" will be used`,
		Detail:   "The WithElse prop always takes precedence over an Else slot.",
		DocURL:   docBase + "W009",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Severity: SeverityError,
		Message:  "Invalid flow.json",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryConfig,
		Severity: SeverityError,
		Message:  "Invalid log setting",
		Detail:   `log.level must be one of debug, info, warn, error and log.format one of text, json.`,
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryConfig,
		Severity: SeverityError,
		Message:  "Invalid port number",
		Detail:   "The port number must be between 0 and 65535.",
		DocURL:   docBase + "E122",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E143": {
		Category: CategoryCLI,
		Severity: SeverityError,
		Message:  "Page not found",
		Detail:   "The requested gallery page does not exist. Run 'flow render --list' to see available pages.",
		DocURL:   docBase + "E143",
	},
	"E144": {
		Category: CategoryCLI,
		Severity: SeverityError,
		Message:  "Unknown code",
		Detail:   "The code is not registered. Run 'flow codes' to list every code.",
		DocURL:   docBase + "E144",
	},
}

// GetAllCodes returns all registered codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
