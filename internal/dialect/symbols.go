package dialect

func sym(glyph, ascii string) Mapping {
	return Mapping{Dialect: glyph, Canonical: ascii, Category: Symbol}
}

func dig(glyph, ascii string) Mapping {
	return Mapping{Dialect: glyph, Canonical: ascii, Category: Digit}
}

// Several glyphs share an ASCII value (× and ＊, ÷ and ／, ￥ and ＼, 。 and ・,
// both corner brackets). Reverse lookup returns the first one listed.
var symbolMappings = []Mapping{
	// brackets
	sym("（", "("),
	sym("）", ")"),
	sym("【", "["),
	sym("】", "]"),
	sym("｛", "{"),
	sym("｝", "}"),

	// quotes
	sym("「", `"`),
	sym("」", `"`),
	sym("『", "'"),
	sym("』", "'"),

	// punctuation
	sym("、", ","),
	sym("。", "."),
	sym("：", ":"),
	sym("；", ";"),
	sym("！", "!"),
	sym("？", "?"),
	sym("…", "..."),

	// operators
	sym("＋", "+"),
	sym("－", "-"),
	sym("×", "*"),
	sym("÷", "/"),
	sym("＝", "="),
	sym("＜", "<"),
	sym("＞", ">"),
	sym("％", "%"),
	sym("＃", "#"),
	sym("＠", "@"),
	sym("＆", "&"),
	sym("｜", "|"),
	sym("＾", "^"),
	sym("～", "~"),
	sym("￥", `\`),

	// other
	sym("＿", "_"),
	sym("＄", "$"),
	sym("＊", "*"),
	sym("／", "/"),
	sym("＼", `\`),
	sym("・", "."),
}

var digitMappings = []Mapping{
	dig("０", "0"),
	dig("１", "1"),
	dig("２", "2"),
	dig("３", "3"),
	dig("４", "4"),
	dig("５", "5"),
	dig("６", "6"),
	dig("７", "7"),
	dig("８", "8"),
	dig("９", "9"),
}
