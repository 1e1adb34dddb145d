package main

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// App
		"Compare two videos side by side or with a draggable divider": "2本の動画を並べて、またはドラッグ可能な分割線で比較",

		// Global flags
		"YAML configuration file":                          "YAML設定ファイル",
		"Console log level (debug, info, warn, error)":     "コンソールのログレベル（debug, info, warn, error）",
		"Diagnostic log file (default: video_compare.log)": "診断ログファイル（デフォルト: video_compare.log）",
		"Do not write the diagnostic log file":             "診断ログファイルを書き込まない",
		"Suppress console log output":                      "コンソールのログ出力を抑制",
		"Path to ffmpeg executable":                        "ffmpeg実行ファイルのパス",
		"Path to ffprobe executable":                       "ffprobe実行ファイルのパス",

		// Commands
		"Play one or two videos in lockstep until the shorter one ends": "短い方の動画が終わるまで1本または2本の動画を同期再生",
		"Seek to a position and save the displayed comparison as PNG":   "指定位置にシークし、表示中の比較画像をPNGで保存",
		"Print resolution, frame rate and duration of videos":           "動画の解像度、フレームレート、再生時間を表示",
		"Show both videos in one frame split by a divider":              "2本の動画を分割線で区切った1枚のフレームに表示",
		"Divider position as a fraction of the frame width":             "フレーム幅に対する分割線の位置（割合）",
		"Directory to write every displayed frame as PNG":               "表示した全フレームをPNGで書き出すディレクトリ",
		"Position in milliseconds":                                      "位置（ミリ秒）",
		"Output PNG file path (required)":                               "出力PNGファイルパス（必須）",

		// Runtime messages
		"Interrupted, shutting down...":      "中断されました。シャットダウン中...",
		"Playback finished: %s":              "再生が終了しました: %s",
		"Wrote %d frames to %s":              "%d フレームを %s に書き出しました",
		"Snapshot at %d ms saved to %s":      "%d ms のスナップショットを %s に保存しました",
		"Failed to probe %s: %v":             "%s の解析に失敗しました: %v",
		"%d of %d files could not be probed": "%d / %d 個のファイルを解析できませんでした",

		// Error messages
		"One or two video arguments are required": "1つまたは2つの動画引数が必要です",
		"At least one video argument is required": "少なくとも1つの動画引数が必要です",
	})
}
