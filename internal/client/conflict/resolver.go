// Package conflict реализует трёхстороннее сравнение версий записи и
// разрешение конфликтов полей. Поле конфликтует, только если обе стороны
// изменили его относительно базового снимка и новые значения различаются.
package conflict

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/Junior620/cocoatrack-sub003/internal/models"
)

// Winner определяет сторону, выигрывающую некритичный конфликт по умолчанию
type Winner string

// Стороны конфликта
const (
	WinnerLocal  Winner = "local"
	WinnerServer Winner = "server"
)

// Choice явный выбор пользователя по одному конфликтующему полю
type Choice string

// Варианты выбора
const (
	ChoiceLocal  Choice = "local"
	ChoiceServer Choice = "server"
)

// Policy настраивает резолвер: критичные поля по таблицам и сторона,
// выигрывающая некритичные конфликты при авто-мерже.
type Policy struct {
	// CriticalFields поля, конфликт по которым блокирует авто-мерж.
	// Ключ - имя таблицы.
	CriticalFields map[string][]string

	// NonCriticalWinner сторона, выигрывающая некритичный конфликт
	NonCriticalWinner Winner
}

// DefaultPolicy возвращает политику по умолчанию: денежные и статусные
// поля поставок критичны, некритичные конфликты выигрывает локальная сторона.
func DefaultPolicy() Policy {
	return Policy{
		CriticalFields: map[string][]string{
			models.TableDeliveries: {
				"weight_kg",
				"quantity",
				"price_per_kg",
				"total_amount",
				"validation_status",
				"payment_status",
			},
		},
		NonCriticalWinner: WinnerLocal,
	}
}

// Result итог разрешения конфликта.
// При NeedsReview авто-мерж невозможен и Merged пуст.
type Result struct {
	// Merged объединённый payload для повторной отправки
	Merged json.RawMessage

	// Details перечень конфликтующих полей
	Details []models.ConflictDetail

	// NeedsReview true, если хотя бы одно конфликтующее поле критично
	NeedsReview bool
}

// Resolver выполняет трёхстороннее сравнение и мерж payload'ов.
// Резолвер не ходит ни в сеть, ни в хранилище.
type Resolver struct {
	critical map[string]map[string]bool
	winner   Winner
}

// NewResolver creates a resolver with the given policy.
func NewResolver(policy Policy) *Resolver {
	critical := make(map[string]map[string]bool, len(policy.CriticalFields))
	for table, fields := range policy.CriticalFields {
		set := make(map[string]bool, len(fields))
		for _, f := range fields {
			set[f] = true
		}
		critical[table] = set
	}

	winner := policy.NonCriticalWinner
	if winner == "" {
		winner = WinnerLocal
	}

	return &Resolver{critical: critical, winner: winner}
}

// Detect возвращает конфликтующие поля local и remote относительно base.
// Отсутствующий base (создание с обеих сторон) сравнивается с пустым объектом.
func (r *Resolver) Detect(table string, base, local, remote json.RawMessage) ([]models.ConflictDetail, error) {
	baseDoc, localDoc, remoteDoc, err := decodeThree(base, local, remote)
	if err != nil {
		return nil, err
	}
	return r.detect(table, baseDoc, localDoc, remoteDoc), nil
}

// Resolve сравнивает три версии и либо строит объединённый payload,
// либо сообщает, что требуется ручное разрешение.
//
// Правила мержа:
//   - поле изменила только одна сторона: берётся её значение;
//   - обе стороны пришли к одному значению: конфликта нет;
//   - обе стороны разошлись, поле некритично: выигрывает сторона из политики;
//   - обе стороны разошлись, поле критично: NeedsReview.
func (r *Resolver) Resolve(table string, base, local, remote json.RawMessage) (*Result, error) {
	baseDoc, localDoc, remoteDoc, err := decodeThree(base, local, remote)
	if err != nil {
		return nil, err
	}

	details := r.detect(table, baseDoc, localDoc, remoteDoc)
	for _, d := range details {
		if d.IsCritical {
			return &Result{Details: details, NeedsReview: true}, nil
		}
	}

	choices := make(map[string]Choice, len(details))
	for _, d := range details {
		// Некритичные конфликты решает политика
		if r.winner == WinnerServer {
			choices[d.Field] = ChoiceServer
		} else {
			choices[d.Field] = ChoiceLocal
		}
	}

	merged, err := r.merge(baseDoc, localDoc, remoteDoc, details, choices)
	if err != nil {
		return nil, err
	}

	return &Result{Merged: merged, Details: details}, nil
}

// ApplyChoices строит объединённый payload по явным выборам пользователя.
// Каждое критичное конфликтующее поле обязано иметь выбор; некритичные
// без выбора решаются политикой.
func (r *Resolver) ApplyChoices(table string, base, local, remote json.RawMessage, choices map[string]Choice) (json.RawMessage, error) {
	baseDoc, localDoc, remoteDoc, err := decodeThree(base, local, remote)
	if err != nil {
		return nil, err
	}

	details := r.detect(table, baseDoc, localDoc, remoteDoc)

	effective := make(map[string]Choice, len(details))
	for _, d := range details {
		choice, ok := choices[d.Field]
		if !ok {
			if d.IsCritical {
				return nil, fmt.Errorf("critical field %q requires an explicit choice", d.Field)
			}
			if r.winner == WinnerServer {
				choice = ChoiceServer
			} else {
				choice = ChoiceLocal
			}
		}
		if choice != ChoiceLocal && choice != ChoiceServer {
			return nil, fmt.Errorf("unknown choice %q for field %q", choice, d.Field)
		}
		effective[d.Field] = choice
	}

	return r.merge(baseDoc, localDoc, remoteDoc, details, effective)
}

// IsCritical reports whether the field is critical for the table.
func (r *Resolver) IsCritical(table, field string) bool {
	return r.critical[table][field]
}

func (r *Resolver) detect(table string, baseDoc, localDoc, remoteDoc map[string]any) []models.ConflictDetail {
	var details []models.ConflictDetail

	for _, field := range unionKeys(localDoc, remoteDoc, baseDoc) {
		baseVal, inBase := baseDoc[field]
		localVal, inLocal := localDoc[field]
		remoteVal, inRemote := remoteDoc[field]

		localChanged := inLocal != inBase || !reflect.DeepEqual(localVal, baseVal)
		remoteChanged := inRemote != inBase || !reflect.DeepEqual(remoteVal, baseVal)
		if !localChanged || !remoteChanged {
			continue
		}
		// Обе стороны сошлись на одном значении - конфликта нет
		if inLocal == inRemote && reflect.DeepEqual(localVal, remoteVal) {
			continue
		}

		detail := models.ConflictDetail{
			Field:       field,
			LocalValue:  localVal,
			RemoteValue: remoteVal,
			BaseValue:   baseVal,
			IsCritical:  r.critical[table][field],
			Resolution:  models.ResolutionAutoMerge,
		}
		if detail.IsCritical {
			detail.Resolution = models.ResolutionManual
		}
		details = append(details, detail)
	}

	return details
}

// merge собирает итоговый документ: серверная версия как основа, поверх неё
// локальные изменения, конфликтующие поля по выбору.
func (r *Resolver) merge(baseDoc, localDoc, remoteDoc map[string]any, details []models.ConflictDetail, choices map[string]Choice) (json.RawMessage, error) {
	conflicting := make(map[string]bool, len(details))
	for _, d := range details {
		conflicting[d.Field] = true
	}

	out := make(map[string]any, len(remoteDoc))
	for k, v := range remoteDoc {
		out[k] = v
	}

	for _, field := range unionKeys(localDoc, remoteDoc, baseDoc) {
		if conflicting[field] {
			if choices[field] == ChoiceLocal {
				applyField(out, localDoc, field)
			}
			continue
		}

		baseVal, inBase := baseDoc[field]
		localVal, inLocal := localDoc[field]
		if inLocal != inBase || !reflect.DeepEqual(localVal, baseVal) {
			// Поле изменила только локальная сторона
			applyField(out, localDoc, field)
		}
	}

	merged, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged payload: %w", err)
	}
	return merged, nil
}

// applyField переносит значение поля из src в dst, удаление поля тоже считается значением
func applyField(dst, src map[string]any, field string) {
	if v, ok := src[field]; ok {
		dst[field] = v
	} else {
		delete(dst, field)
	}
}

func decodeThree(base, local, remote json.RawMessage) (baseDoc, localDoc, remoteDoc map[string]any, err error) {
	if baseDoc, err = decodeDoc(base); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid base payload: %w", err)
	}
	if localDoc, err = decodeDoc(local); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid local payload: %w", err)
	}
	if remoteDoc, err = decodeDoc(remote); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid remote payload: %w", err)
	}
	return baseDoc, localDoc, remoteDoc, nil
}

func decodeDoc(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func unionKeys(docs ...map[string]any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, doc := range docs {
		for k := range doc {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
