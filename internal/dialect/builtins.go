package dialect

func bi(dialect, canonical string) Mapping {
	return Mapping{Dialect: dialect, Canonical: canonical, Category: Builtin}
}

var builtinMappings = []Mapping{
	// I/O and interaction
	bi("プリント", "print"),
	bi("インプット", "input"),
	bi("ヘルプ", "help"),

	// collections
	bi("レン", "len"),
	bi("サム", "sum"),
	bi("マックス", "max"),
	bi("ミン", "min"),
	bi("ソーテッド", "sorted"),
	bi("リバースド", "reversed"),
	bi("ディル", "dir"),

	// iteration
	bi("オール", "all"),
	bi("エニー", "any"),
	bi("マップ", "map"),
	bi("フィルター", "filter"),
	bi("ジップ", "zip"),
	bi("スライス", "slice"),
	bi("イター", "iter"),
	bi("ネクスト", "next"),
	bi("エイター", "aiter"),
	bi("エイネクスト", "anext"),
	bi("レンジ", "range"),

	// math and numbers
	bi("エービーエス", "abs"),
	bi("パウ", "pow"),
	bi("ラウンド", "round"),
	bi("ディブモッド", "divmod"),

	// objects and attributes
	bi("イズインスタンス", "isinstance"),
	bi("イズサブクラス", "issubclass"),
	bi("ハズアトリブ", "hasattr"),
	bi("ゲットアトリブ", "getattr"),
	bi("セットアトリブ", "setattr"),
	bi("デルアトリブ", "delattr"),

	// representation and encoding
	bi("アスキー", "ascii"),
	bi("ビン", "bin"),
	bi("レップ", "repr"),
	bi("フォーマット", "format"),
	bi("ヘックス", "hex"),
	bi("オクト", "oct"),
	bi("キャラ", "chr"),
	bi("オーアールディー", "ord"),

	// core
	bi("コーラブル", "callable"),
	bi("コンパイル", "compile"),
	bi("エバル", "eval"),
	bi("エグゼック", "exec"),
	bi("グローバルズ", "globals"),
	bi("ハッシュ", "hash"),
	bi("アイディー", "id"),
	bi("ローカルズ", "locals"),
	bi("オープン", "open"),
	bi("バーズ", "vars"),

	// types
	bi("ブール", "bool"),
	bi("イント", "int"),
	bi("フロート", "float"),
	bi("ストリング", "str"),
	bi("リスト", "list"),
	bi("タプル", "tuple"),
	bi("ディクト", "dict"),
	bi("セット", "set"),
	bi("フローズンセット", "frozenset"),
	bi("バイツ", "bytes"),
	bi("バイトアレイ", "bytearray"),
	bi("コンプレックス", "complex"),
	bi("エニュメレート", "enumerate"),
	bi("メモリビュー", "memoryview"),

	// advanced types
	bi("オブジェクト", "object"),
	bi("タイプ", "type"),
	bi("スーパー", "super"),
	bi("プロパティ", "property"),
	bi("クラスメソッド", "classmethod"),
	bi("スタティックメソッド", "staticmethod"),

	// interactive interpreter helpers
	bi("ブレークポイント", "breakpoint"),
	bi("コピーライト", "copyright"),
	bi("クレジッツ", "credits"),
	bi("エグジット", "exit"),
	bi("ライセンス", "license"),
	bi("クイット", "quit"),
}
