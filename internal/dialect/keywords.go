package dialect

func kw(dialect, canonical string) Mapping {
	return Mapping{Dialect: dialect, Canonical: canonical, Category: Keyword}
}

var keywordMappings = []Mapping{
	// logical constants
	kw("トゥルー", "True"),
	kw("フォルス", "False"),
	kw("ノン", "None"),

	// control flow
	kw("イフ", "if"),
	kw("エリフ", "elif"),
	kw("エルス", "else"),
	kw("フォー", "for"),
	kw("ホワイル", "while"),
	kw("ブレーク", "break"),
	kw("コンティニュー", "continue"),

	// functions and classes
	kw("デフ", "def"),
	kw("クラス", "class"),
	kw("リターン", "return"),
	kw("イールド", "yield"),
	kw("ラムダ", "lambda"),

	// operators
	kw("アンド", "and"),
	kw("オア", "or"),
	kw("ノット", "not"),
	kw("イン", "in"),
	kw("イズ", "is"),

	// error handling
	kw("トライ", "try"),
	kw("エクセプト", "except"),
	kw("ファイナリー", "finally"),
	kw("レイズ", "raise"),

	// modules and scope
	kw("インポート", "import"),
	kw("フロム", "from"),
	kw("アズ", "as"),
	kw("グローバル", "global"),
	kw("ノンローカル", "nonlocal"),

	// async
	kw("エイシンク", "async"),
	kw("アウェイト", "await"),

	// misc
	kw("パス", "pass"),
	kw("デル", "del"),
	kw("ウィズ", "with"),
	kw("アサート", "assert"),
}
