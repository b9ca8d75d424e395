package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu would otherwise write a config dir under the user's home
	api.DisableConfigDir()
}

// Finalize stamps document properties into data and returns the result with its page count.
func Finalize(data []byte, properties map[string]string) ([]byte, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyDocument
	}
	conf := model.NewDefaultConfiguration()

	out := data
	if len(properties) > 0 {
		var buf bytes.Buffer
		if err := api.AddProperties(bytes.NewReader(data), &buf, properties, conf); err != nil {
			return nil, 0, fmt.Errorf("add pdf properties: %w", err)
		}
		out = buf.Bytes()
	}

	pages, err := api.PageCount(bytes.NewReader(out), conf)
	if err != nil {
		return nil, 0, fmt.Errorf("count pdf pages: %w", err)
	}
	if pages == 0 {
		return nil, 0, ErrEmptyDocument
	}
	return out, pages, nil
}
