package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Playback controller (info / warn / error)
		"Loaded %s (%s mode), primary duration %.2f sec": "%s を読み込みました (%s モード), 基準再生時間 %.2f 秒",
		"Failed to open first video: %s: %v":             "1本目の動画を開けませんでした: %s: %v",
		"Failed to open second video: %s: %v":            "2本目の動画を開けませんでした: %s: %v",
		"Failed to release video 1: %v":                  "動画1の解放に失敗しました: %v",
		"Failed to release video 2: %v":                  "動画2の解放に失敗しました: %v",
		"Invalid combined FPS: %.2f":                     "無効な合成FPS: %.2f",
		"Failed to rewind %s: %v":                        "%s の巻き戻しに失敗しました: %v",
		"Frame width too small to split.":                "フレーム幅が小さすぎて分割できません。",
		"Error during frame display: %v":                 "フレーム表示中にエラーが発生しました: %v",
		"Error during frame update: %v":                  "フレーム更新中にエラーが発生しました: %v",
		"Error during seeking: %v":                       "シーク中にエラーが発生しました: %v",

		// Compositor
		"Error converting frames: %v":    "フレーム変換中にエラーが発生しました: %v",
		"Failed to present overlay: %v":  "オーバーレイの表示に失敗しました: %v",
		"Error during press scaling: %v": "押下位置の計算中にエラーが発生しました: %v",
		"Error during drag scaling: %v":  "ドラッグ位置の計算中にエラーが発生しました: %v",

		// Dialog
		"%s: %s": "%s: %s",
	})
}
