package parser

// Formula is a cast written inline: items joined by "+".
type Formula struct {
	Items []*Item `parser:"@@ ( \"+\" @@ )*"`
}

// Item is either an ingredient or an incantation, with optional attributes
// such as `affinity: fire` or `language: "Old English"`.
type Item struct {
	Kind  string  `parser:"@Keyword"`
	Name  string  `parser:"@String"`
	Attrs []*Attr `parser:"@@*"`
}

// Attr is one key: value pair.
type Attr struct {
	Key   string `parser:"@Ident \":\""`
	Value string `parser:"@(Ident|String)"`
}
