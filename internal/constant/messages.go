package constant

// User-facing messages. The app ships with a Japanese surface, so these are
// part of the API contract, not translatable UI strings.
const (
	MsgFavoriteAdded      = "お気に入りに追加しました"
	MsgFavoritesEmpty     = "お気に入りはまだありません"
	MsgFavoritesCountFmt  = "%d件のお気に入りがあります"
	MsgFavoriteDeletedFmt = "「%s」をお気に入りから削除しました"
	MsgRestaurantCreated  = "店舗が正常に登録されました"

	ErrMsgRestaurantIDRequired = "店舗IDが必要です"
	ErrMsgRestaurantNotFound   = "指定された店舗が見つかりません"
	ErrMsgAlreadyFavorited     = "この店舗は既にお気に入りに追加されています"
	ErrMsgUserNotFound         = "ユーザーが見つかりません"
	ErrMsgFavoriteNotFound     = "指定されたお気に入りが見つかりません"
	ErrMsgForbiddenFavorite    = "他のユーザーのお気に入りは削除できません"
	ErrMsgValidationRequired   = "必須フィールドが不足しています"
	ErrMsgServer               = "サーバーエラーが発生しました"
)

// Machine-readable error codes used by the enveloped error responses.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeRestaurantNotFound  = "RESTAURANT_NOT_FOUND"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)
