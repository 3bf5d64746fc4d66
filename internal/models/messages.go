package models

// Fixed user-facing messages. The API only ever answers with one of
// these; the underlying error stays in the server log.
const (
	MsgInternalServerError = "Internal Server Error"
	MsgBadRequest          = "Bad Request"
	MsgDuplicateURL        = "この URL は既に登録されています"
	MsgBookmarkNotFound    = "指定されたブックマークが見つかりませんでした"

	MsgTitleRequired    = "タイトルは必須です"
	MsgTitleMinLength   = "タイトルは1文字以上である必要があります"
	MsgURLInvalidProto  = "URL は http:// または https:// で始まる必要があります"
	MsgURLInvalidFormat = "有効な URL 形式である必要があります"
	MsgUpdateMinFields  = "タイトルまたは URL の少なくとも一方は指定する必要があります"
)

// Fixed log message keys for server-side failures.
const (
	LogDBInitFailed         = "Failed to initialize database:"
	LogServerStartFailed    = "Failed to start server:"
	LogFetchBookmarksFailed = "Failed to fetch bookmarks:"
	LogCreateBookmarkFailed = "Failed to create bookmark:"
	LogUpdateBookmarkFailed = "Failed to update bookmark:"
	LogDeleteBookmarkFailed = "Failed to delete bookmark:"
)
