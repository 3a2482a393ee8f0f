package models

// Checkout endpoint error messages shown to the supporter.
const (
	MsgInvalidAmount = "金額は100円以上を指定してください"
	MsgInvalidType   = "支援タイプが不正です"
	MsgUpstream      = "Stripe APIエラーが発生しました"
	MsgInternal      = "内部エラーが発生しました"
)

type Response struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

func URLResponse(url string) Response {
	return Response{URL: url}
}

func ErrorResponse(err string) Response {
	return Response{Error: err}
}
