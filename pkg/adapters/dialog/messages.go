package dialog

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Warning": "警告",
		"Error":   "エラー",

		"First video not selected.": "1本目の動画が選択されていません。",
		"Failed to open the first video. Please check the file and try again.":  "1本目の動画を開けませんでした。ファイルを確認してもう一度お試しください。",
		"Failed to open the second video. Please check the file and try again.": "2本目の動画を開けませんでした。ファイルを確認してもう一度お試しください。",
		"Please load at least one video first.":                                 "先に少なくとも1本の動画を読み込んでください。",
		"Please load the second video or leave it empty.":                       "2本目の動画を読み込むか、空のままにしてください。",
		"Invalid FPS detected. Cannot start playback.":                          "無効なFPSが検出されました。再生を開始できません。",
		"Please load at least one video before switching to Overlay Mode.":      "オーバーレイモードに切り替える前に少なくとも1本の動画を読み込んでください。",
		"Video frame width is too small to split for side-by-side comparison.":  "動画のフレーム幅が小さすぎて並列比較用に分割できません。",
		"An error occurred while displaying a frame:\n%v":                       "フレームの表示中にエラーが発生しました:\n%v",
		"An error occurred during playback:\n%v":                                "再生中にエラーが発生しました:\n%v",
		"An error occurred while seeking:\n%v":                                  "シーク中にエラーが発生しました:\n%v",
	})
}
