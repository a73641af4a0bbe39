// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package serializer writes and reads shampug documents.
//
// Three output formats are supported:
//   - YAML: the native fixture format
//   - JSON: machine-readable, indented
//   - Table: aligned columns for terminals
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Values implementing Tabular render one row per item under upper-cased
// column headers. All other values are flattened into FIELD/VALUE rows
// with dotted keys.
//
// Reading accepts local paths and http(s) URLs. The format comes from the
// file extension:
//
//	doc, err := serializer.FromFile[fixture.Document]("https://example.com/pugs.yaml")
//
// For HTTP handlers, RespondJSON encodes into a buffer before writing the
// status line so encoding failures never produce partial responses.
package serializer
