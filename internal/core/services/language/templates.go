package language

import "strings"

const (
	javascriptTemplate = "function solution(input) {\n  // Write your code here\n  \n}"
	pythonTemplate     = "def solution(input):\n    # Write your code here\n    pass"
	javaTemplate       = "public class Solution {\n    public static void main(String[] args) {\n        // Write your code here\n    }\n}"
	cppTemplate        = "#include <iostream>\nusing namespace std;\n\nint main() {\n    // Write your code here\n    return 0;\n}"
)

var starterTemplates = map[string]string{
	"javascript": javascriptTemplate,
	"typescript": javascriptTemplate,
	"python":     pythonTemplate,
	"java":       javaTemplate,
	"c++":        cppTemplate,
	"cpp":        cppTemplate,
	"c":          cppTemplate,
}

// StarterTemplate returns a canned code skeleton for the given language.
// Unrecognized languages fall back to the JavaScript skeleton, so unlike
// Resolve this lookup never fails.
func StarterTemplate(name string) string {
	if tmpl, ok := starterTemplates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tmpl
	}
	return javascriptTemplate
}
