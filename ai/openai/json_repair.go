// Copyright 2026 Namankura Authors
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


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses:
// missing opening quotes before object keys, and trailing commas before a
// closing brace or bracket.
func repairJSON(s string) string {
	return fixTrailingCommas(fixUnquotedKeys(s))
}

// fixUnquotedKeys inserts the missing opening quote before keys written as
// `key":` after { or a comma. Example: `, vibe":` -> `, "vibe":`
func fixUnquotedKeys(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	i := 0
	for i < len(in) {
		ch := in[i]
		out = append(out, ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		// Skip whitespace after the delimiter
		for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t') {
			out = append(out, in[i])
			i++
		}

		// A key starting with a letter instead of a quote is a candidate
		if i >= len(in) || in[i] == '"' || !isLetter(in[i]) {
			continue
		}
		keyStart := i
		for i < len(in) && (isLetter(in[i]) || in[i] == '_') {
			i++
		}

		// Only a `key":` shape indicates a dropped opening quote
		if i+1 < len(in) && in[i] == '"' && in[i+1] == ':' {
			out = append(out, '"')
		}
		out = append(out, in[keyStart:i]...)
	}

	return string(out)
}

// fixTrailingCommas drops a comma that directly precedes } or ].
func fixTrailingCommas(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in))

	for i := 0; i < len(in); i++ {
		if in[i] == ',' {
			j := i + 1
			for j < len(in) && (in[j] == ' ' || in[j] == '\n' || in[j] == '\t') {
				j++
			}
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				continue
			}
		}
		out = append(out, in[i])
	}

	return string(out)
}
