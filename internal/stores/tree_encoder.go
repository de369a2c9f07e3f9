package stores

import (
	"encoding/json"
	"io"

	"pageview-analytics/internal/shapers"

	"gopkg.in/yaml.v3"
)

type TreeFormat string

const (
	TreeFormatJSON TreeFormat = "json"
	TreeFormatYAML TreeFormat = "yaml"
)

// EncodeTree writes tree to w as an indented json or yaml document.
func EncodeTree(w io.Writer, format TreeFormat, tree *shapers.ShapedNode) error {
	switch format {
	case TreeFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tree); err != nil {
			return errInternalEncodeFailed(format, err)
		}
	case TreeFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return errInternalEncodeFailed(format, err)
		}
		if err := encoder.Close(); err != nil {
			return errInternalEncodeFailed(format, err)
		}
	default:
		return errUnsupportedFormat(format)
	}
	return nil
}
