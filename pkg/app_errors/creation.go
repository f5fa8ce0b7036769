package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind 是活動建立流程可回報的錯誤種類，為封閉集合
type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindValidation
	KindPersistence
	KindUpload
	KindPartialTicket
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindValidation:
		return "validation_failed"
	case KindPersistence:
		return "persistence_failed"
	case KindUpload:
		return "upload_failed"
	case KindPartialTicket:
		return "partial_ticket_failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// CreationError 活動建立流程的錯誤
//
// Fields 僅在 KindValidation 時使用（欄位名稱 -> 訊息）；
// Lines 為逐行訊息（票種驗證、上傳失敗的檔案、失敗的票種寫入）。
type CreationError struct {
	Kind    Kind
	Step    string
	Message string
	Fields  map[string]string
	Lines   []string
	Err     error
}

func (e *CreationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Step != "" {
		b.WriteString(" [")
		b.WriteString(e.Step)
		b.WriteString("]")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "; %s: %s", k, e.Fields[k])
		}
	}
	for _, line := range e.Lines {
		b.WriteString("; ")
		b.WriteString(line)
	}
	return b.String()
}

func (e *CreationError) Unwrap() error { return e.Err }

// Is 讓 errors.Is(err, ErrUnauthenticated) 對 KindUnauthenticated 成立
func (e *CreationError) Is(target error) bool {
	return e.Kind == KindUnauthenticated && target == ErrUnauthenticated
}

// Detail 回傳給使用者看的多行訊息
func (e *CreationError) Detail() string {
	if len(e.Lines) > 0 {
		return strings.Join(e.Lines, "\n")
	}
	return e.Message
}

func NewUnauthenticated(message string) *CreationError {
	return &CreationError{Kind: KindUnauthenticated, Message: message, Err: ErrUnauthenticated}
}

func NewValidation(fields map[string]string, lines []string) *CreationError {
	return &CreationError{
		Kind:    KindValidation,
		Message: "please fix the highlighted fields",
		Fields:  fields,
		Lines:   lines,
		Err:     ErrInvalidInput,
	}
}

func NewPersistence(step, action string, err error) *CreationError {
	return &CreationError{Kind: KindPersistence, Step: step, Message: PersistenceMessage(action, err), Err: err}
}

func NewUpload(step string, lines []string, err error) *CreationError {
	return &CreationError{Kind: KindUpload, Step: step, Message: "media upload failed", Lines: lines, Err: err}
}

func NewPartialTicket(step string, lines []string, err error) *CreationError {
	return &CreationError{Kind: KindPartialTicket, Step: step, Message: "some ticket types could not be created", Lines: lines, Err: err}
}

// KindOf 取出錯誤鏈中第一個 CreationError 的種類；找不到時回傳 0
func KindOf(err error) Kind {
	var ce *CreationError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// PostgreSQL SQLSTATE
const (
	pgInsufficientPrivilege = "42501"
	pgUniqueViolation       = "23505"
	pgNotNullViolation      = "23502"
)

// PersistenceMessage 將儲存層錯誤轉成可讀訊息，無法辨識時原樣回傳
func PersistenceMessage(action string, err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInsufficientPrivilege:
			return permissionMessage(action)
		case pgUniqueViolation:
			return "A record with the same details already exists"
		case pgNotNullViolation:
			return "Please fill in all required fields"
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case errors.Is(err, ErrForbidden),
		strings.Contains(lower, "row-level security"),
		strings.Contains(lower, "permission denied"),
		strings.Contains(lower, "permission"):
		return permissionMessage(action)
	case strings.Contains(lower, "duplicate"):
		return "A record with the same details already exists"
	case strings.Contains(lower, "null value in column"):
		return "Please fill in all required fields"
	case strings.Contains(lower, "check_ticket_availability"):
		return "No tickets available for this ticket type"
	}
	return msg
}

func permissionMessage(action string) string {
	if action == "" {
		return "You do not have permission to perform this action"
	}
	return "You do not have permission to " + action
}
