package manifest

// Merge returns a new map with override applied on top of base.
//
// Keys holding objects on both sides are merged recursively. Any other value,
// arrays included, replaces the base value wholesale. Neither input is modified.
func Merge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = clone(v)
	}

	for k, v := range override {
		baseObj, baseIsObj := out[k].(map[string]any)
		overObj, overIsObj := v.(map[string]any)
		if baseIsObj && overIsObj {
			out[k] = Merge(baseObj, overObj)
			continue
		}
		out[k] = clone(v)
	}

	return out
}

// clone deep-copies decoded JSON values
func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = clone(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = clone(inner)
		}
		return out
	default:
		return v
	}
}
