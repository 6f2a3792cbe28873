package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".japy" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil || len(src) > maxSeedBytes {
			return nil
		}
		f.Add(string(src))
		return nil
	})
	if err != nil {
		f.Fatalf("walk testdata: %v", err)
	}
}

func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"デフ メイン（）：\n    プリント（『ハロー、ジャパイ！』）\nメイン（）\n",
		"インポート os\nフロム sys インポート argv アズ a\n",
		"x ＝ １２３ ＋ ４５６ × ７\n",
		"イズインスタンス（x、イント） アンド ノット イズサブクラス（y、ストリング）",
		"エイシンク デフ f（）：\n    アウェイト g（）\n",
		"メイン インク イン_ abcイン",
		"\xff\xfe（）",
		"…・。、「」『』",
	}
	for _, s := range seeds {
		f.Add(s)
	}
}
