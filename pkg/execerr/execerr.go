// Package execerr defines the handler error taxonomy and the canonical
// user-visible line for each kind. Raw error text never reaches users; the
// decision log records only the kind name.
package execerr

import (
	"errors"
	"fmt"
)

// Kind names. These are the only error codes written to decision logs.
const (
	KindInputInvalid        = "input_invalid"
	KindParameterInvalid    = "parameter_invalid"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindTimeout             = "timeout"
	KindPermissionDenied    = "permission_denied"
	KindNotFound            = "not_found"
	KindConflict            = "conflict"
	KindPolicyBlocked       = "policy_blocked"
	KindInternal            = "internal"
)

// userLines maps kinds to the canonical Japanese reply.
var userLines = map[string]string{
	KindInputInvalid:        "すみません、メッセージを理解できませんでした。もう一度お願いします。",
	KindParameterInvalid:    "必要な情報が足りないようです。もう少し詳しく教えてください。",
	KindUpstreamUnavailable: "外部サービスに接続できませんでした。しばらくしてからもう一度お試しください。",
	KindTimeout:             "処理に時間がかかっています。結果が出次第お知らせします。",
	KindPermissionDenied:    "この操作を行う権限がありません。管理者にご相談ください。",
	KindNotFound:            "対象が見つかりませんでした。",
	KindConflict:            "他の操作と競合しました。もう一度お試しください。",
	KindPolicyBlocked:       "この依頼には対応できません。",
	KindInternal:            "申し訳ありません、処理中に問題が発生しました。",
}

// UserLine returns the canonical user-visible sentence for a kind.
func UserLine(kind string) string {
	if line, ok := userLines[kind]; ok {
		return line
	}
	return userLines[KindInternal]
}

// Error wraps an underlying error with its taxonomy kind.
type Error struct {
	Kind string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a kind.
func New(kind string, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf wraps a formatted error with a kind.
func Newf(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the taxonomy kind from err, defaulting to internal.
func KindOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
