package usecase

import "errors"

// 失敗の種類はここで統一する。handlerがHTTPステータスへ変換する。
var (
	//404 商品・カート明細・注文・ユーザーが無い
	ErrNotFound = errors.New("not found")
	//400 入力不足・不正な値
	ErrValidation = errors.New("validation error")
	//400 在庫を超える数量
	ErrInsufficientStock = errors.New("insufficient stock")
	//400 空カートでのチェックアウト
	ErrEmptyCart = errors.New("cart is empty")
	//403 所有者・権限違反
	ErrForbidden = errors.New("forbidden")
	//401 未ログイン
	ErrUnauthenticated = errors.New("unauthenticated")
	//409 username / email の重複
	ErrDuplicate = errors.New("already exists")
	//400 許可していない画像拡張子
	ErrInvalidFileType = errors.New("invalid file type")
	//403 管理者が自分自身の権限を外そうとした
	ErrSelfDemotion = errors.New("cannot change own admin status")
	//500 ファイル保存やDB書き込みの失敗
	ErrStorage = errors.New("storage failure")
)
