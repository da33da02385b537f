/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"ledsail/internal/domain"
	"ledsail/internal/layout"
	"ledsail/internal/sail"
)

//go:embed layout.schema.json
var layoutSchema []byte

// DocumentVersion is written to every layout document.
const DocumentVersion = 1

// ErrSchema wraps schema violations of a layout document.
var ErrSchema = errors.New("layout document does not conform to schema")

// Document is the JSON form of a layout result.
type Document struct {
	Version int           `json:"version"`
	Params  domain.Params `json:"params"`
	Scene   domain.Scene  `json:"scene"`
	Info    layout.Info   `json:"info"`
	Strands []sail.Strand `json:"strands"`
}

// NewDocument captures res. Empty collections encode as [] rather than null.
func NewDocument(res layout.Result) Document {
	doc := Document{
		Version: DocumentVersion,
		Params:  res.Params,
		Scene:   res.Scene,
		Info:    res.Info,
		Strands: res.Strands,
	}
	if doc.Strands == nil {
		doc.Strands = []sail.Strand{}
	}
	if doc.Info.LEDsPerStrand == nil {
		doc.Info.LEDsPerStrand = []int{}
	}
	if doc.Scene.Sails == nil {
		doc.Scene.Sails = []domain.SailShape{}
	}
	return doc
}

// ValidateDocument checks raw JSON against the embedded schema.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(layoutSchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
	}
	return nil
}

// WriteJSON encodes res as an indented document. The output is validated
// before anything is written to w.
func WriteJSON(w io.Writer, res layout.Result) error {
	data, err := json.MarshalIndent(NewDocument(res), "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// ExportJSON writes the layout document for res to path.
func ExportJSON(path string, res layout.Result) error {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// ReadJSON validates and decodes a layout document.
func ReadJSON(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read layout: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode layout: %w", err)
	}
	return doc, nil
}
