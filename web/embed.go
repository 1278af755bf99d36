// Package web はサーバーに同梱するHTMLテンプレートと静的ファイルを埋め込みます。
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed all:static
var staticFS embed.FS

// Templates は埋め込み済みテンプレートをパースして返します。
// パースに失敗するのはビルド成果物が壊れている場合だけなのでpanicします。
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// StaticHandler は埋め込み済み静的ファイルを /static/ 以下で配信します。
func StaticHandler() http.Handler {
	subFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(subFS)))
}
