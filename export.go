package newsprint

import (
	"bytes"
	"encoding/json"
)

// Export returns the configured article fields as a name to value mapping.
// Names the Article does not carry are looked up on its Config; unknown
// names map to nil. Returns EPRECONDITION if the article has not been parsed.
func (a *Article) Export() (map[string]any, error) {
	fields, values, err := a.exportValues()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields))
	for i, name := range fields {
		out[name] = values[i]
	}
	return out, nil
}

// ExportJSON returns the configured article fields as an indented JSON
// object, keeping the configured field order. Dates are RFC 3339 strings.
func (a *Article) ExportJSON() ([]byte, error) {
	fields, values, err := a.exportValues()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (a *Article) exportValues() ([]string, []any, error) {
	if err := a.RequireParsed(); err != nil {
		return nil, nil, err
	}

	article, err := toFieldMap(a)
	if err != nil {
		return nil, nil, err
	}
	config, err := toFieldMap(a.Config)
	if err != nil {
		return nil, nil, err
	}

	article["language"] = a.Language()
	if a.PublishDate.IsZero() {
		article["publish_date"] = nil
	}

	fields := a.Config.ArticleJSONFields
	if len(fields) == 0 {
		fields = DefaultArticleJSONFields
	}
	values := make([]any, len(fields))
	for i, name := range fields {
		if v, ok := article[name]; ok {
			values[i] = v
			continue
		}
		values[i] = config[name]
	}
	return fields, values, nil
}

func toFieldMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
