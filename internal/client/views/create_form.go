package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
)

// Имена полей формы совпадают с ключами JSON
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldBedrooms    = "bedrooms"
	FieldBathrooms   = "bathrooms"
	FieldArea        = "area"
	FieldType        = "type"
	FieldStatus      = "status"
)

// CreateForm накапливает черновик объявления. После неудачной отправки
// значения полей сохраняются.
type CreateForm struct {
	api PropertyAPI

	mu    sync.Mutex
	draft domain.PropertyPatch
	err   error
}

func NewCreateForm(api PropertyAPI) *CreateForm {
	f := &CreateForm{api: api}
	f.reset()
	return f
}

// Reset возвращает форму к значениям по умолчанию (house, available)
func (f *CreateForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *CreateForm) reset() {
	typ := domain.PropertyTypeHouse
	status := domain.PropertyStatusAvailable
	f.draft = domain.PropertyPatch{
		Type:         &typ,
		Status:       &status,
		Images:       []string{},
		ImagesSet:    true,
		Amenities:    []string{},
		AmenitiesSet: true,
	}
	f.err = nil
}

// SetField разбирает строковое значение поля
func (f *CreateForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldTitle:
		f.draft.Title = &value
	case FieldDescription:
		f.draft.Description = &value
	case FieldLocation:
		f.draft.Location = &value
	case FieldPrice, FieldBathrooms, FieldArea:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return domain.NewValidationError(name, "must be a number")
		}
		switch name {
		case FieldPrice:
			f.draft.Price = &n
		case FieldBathrooms:
			f.draft.Bathrooms = &n
		default:
			f.draft.Area = &n
		}
	case FieldBedrooms:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return domain.NewValidationError(name, "must be an integer")
		}
		f.draft.Bedrooms = &n
	case FieldType:
		t := domain.PropertyType(strings.ToLower(strings.TrimSpace(value)))
		f.draft.Type = &t
	case FieldStatus:
		s := domain.PropertyStatus(strings.ToLower(strings.TrimSpace(value)))
		f.draft.Status = &s
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// AddImage игнорирует пустые значения
func (f *CreateForm) AddImage(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if url = strings.TrimSpace(url); url != "" {
		f.draft.Images = append(f.draft.Images, url)
	}
}

func (f *CreateForm) RemoveImage(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Images = removeAt(f.draft.Images, index)
}

func (f *CreateForm) AddAmenity(amenity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if amenity = strings.TrimSpace(amenity); amenity != "" {
		f.draft.Amenities = append(f.draft.Amenities, amenity)
	}
}

func (f *CreateForm) RemoveAmenity(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Amenities = removeAt(f.draft.Amenities, index)
}

// Draft возвращает копию черновика
func (f *CreateForm) Draft() domain.PropertyPatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyDraft()
}

func (f *CreateForm) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Validate - локальная проверка теми же правилами, что и на сервере.
// Незаполненные числовые поля считаются обязательными.
func (f *CreateForm) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validate()
}

func (f *CreateForm) validate() error {
	vErr := &domain.ValidationError{}
	required := map[string]bool{
		FieldPrice:     f.draft.Price == nil,
		FieldBedrooms:  f.draft.Bedrooms == nil,
		FieldBathrooms: f.draft.Bathrooms == nil,
		FieldArea:      f.draft.Area == nil,
	}
	for _, name := range []string{FieldPrice, FieldBedrooms, FieldBathrooms, FieldArea} {
		if required[name] {
			vErr.Add(name, "is required")
		}
	}

	if err := domain.ValidateProperty(domain.NewPropertyFromDraft(f.draft)); err != nil {
		if domainErr, ok := err.(*domain.ValidationError); ok {
			vErr.Problems = append(vErr.Problems, domainErr.Problems...)
		} else {
			return err
		}
	}

	if len(vErr.Problems) > 0 {
		return vErr
	}
	return nil
}

// Submit проверяет черновик и отправляет его на сервер.
// При успехе форма сбрасывается.
func (f *CreateForm) Submit(ctx context.Context) (*domain.Property, error) {
	f.mu.Lock()
	if err := f.validate(); err != nil {
		f.err = err
		f.mu.Unlock()
		return nil, err
	}
	draft := f.copyDraft()
	f.mu.Unlock()

	created, err := f.api.CreateProperty(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.err = err
		return nil, err
	}
	f.reset()
	return created, nil
}

func (f *CreateForm) copyDraft() domain.PropertyPatch {
	d := f.draft
	d.Images = append([]string{}, f.draft.Images...)
	d.Amenities = append([]string{}, f.draft.Amenities...)
	return d
}

func removeAt(items []string, index int) []string {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}
