package template

import (
	"os"
	"path/filepath"
)

// Variables reports every placeholder name referenced by a template's file
// contents, each mapped to an empty default. It is a discovery aid for
// prompting, not a validator: directory paths and post-create commands are
// not inspected, and a referenced template file missing from disk simply
// contributes nothing.
func Variables(desc *Descriptor) map[string]string {
	vars := make(map[string]string)

	for _, spec := range desc.Files {
		content := spec.Content
		if content == "" && spec.Template != "" {
			data, err := os.ReadFile(filepath.Join(desc.SourcePath, spec.Template))
			if err != nil {
				continue
			}
			content = string(data)
		}

		for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
			vars[match[1]] = ""
		}
	}

	return vars
}
