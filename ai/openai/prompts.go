package openai

import (
	"fmt"
	"strings"

	"github.com/namankura/namankura/ai"
)

const wishResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "gender": {
      "type": "string",
      "enum": ["boy", "girl", "unisex"]
    },
    "syllables": {
      "type": "integer",
      "minimum": 1
    },
    "deity": {
      "type": "string"
    },
    "sources": {
      "type": "array",
      "items": {"type": "string"}
    },
    "start_letters": {
      "type": "array",
      "items": {"type": "string", "pattern": "^[A-Za-z]{1,3}$"}
    },
    "vibe": {
      "type": "string"
    }
  },
  "additionalProperties": false
}`

const wishPromptTemplate = `Extract baby-name filter constraints from the given wish and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Include a key ONLY when the wish clearly expresses that constraint. Omit everything else entirely.
- Never invent constraints the wish does not state or clearly imply.
- "gender" must be exactly one of: boy, girl, unisex.
- "deity" should be one of the known affinities when possible: %s.
- "sources" entries should be drawn from: %s.
- "vibe" is a single lowercase style word, preferably one of: %s.
- "start_letters" are short letter groups the name should begin with, capitalized as given.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example (structured wish):
Input: "a two syllable boy name connected to Vishnu"
Output:
{
  "gender": "boy",
  "syllables": 2,
  "deity": "Vishnu"
}

Example (informal, no punctuation):
Input: "girl name starting with A or Aa something from the vedas"
Output:
{
  "gender": "girl",
  "start_letters": ["A", "Aa"],
  "sources": ["Vedic"]
}

Example (style only):
Input: "we want something modern and easy to say abroad"
Output:
{
  "vibe": "modern"
}

Example (nothing usable):
Input: "hello can you help us"
Output:
{}`

// buildSystemPrompt creates the system prompt with the known vocabularies embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(wishPromptTemplate,
		wishResponseSchema,
		strings.Join(ai.Deities, ", "),
		strings.Join(ai.SourceTags, ", "),
		strings.Join(ai.Vibes, ", "))
}
