package api

import (
	"bytes"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"ripeness-backend/internal/core"
	"ripeness-backend/internal/database"
	"ripeness-backend/internal/storage"
	"ripeness-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

type ClassifierService struct {
	db    *gorm.DB
	store storage.ObjectStore // nil when upload archival is disabled

	bucket         string
	maxUploadBytes int64
}

func NewClassifierService(db *gorm.DB, store storage.ObjectStore, bucket string, maxUploadBytes int64) *ClassifierService {
	return &ClassifierService{db: db, store: store, bucket: bucket, maxUploadBytes: maxUploadBytes}
}

func (s *ClassifierService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Get("/stages", RestHandler(s.ListStages))
	r.Post("/classify", RestHandler(s.Classify))
	r.Route("/classifications", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListClassifications))
		r.Get("/{classification_id}", RestHandler(s.GetClassification))
		r.Get("/{classification_id}/image", s.GetClassificationImage)
	})
}

// upload carries the raw bytes of an accepted image upload so it can be
// archived after classification.
type upload struct {
	data []byte
	ext  string
}

func (s *ClassifierService) Classify(r *http.Request) (any, error) {
	sample, inputColor, up, err := s.parseSample(r)
	if err != nil {
		return nil, err
	}

	result, err := core.Classify(sample)
	if err != nil {
		return nil, classificationError(err)
	}

	ctx := r.Context()

	record := database.Classification{
		Id:           uuid.New(),
		Source:       sourceOf(sample.Kind()),
		InputColor:   sql.NullString{String: inputColor, Valid: inputColor != ""},
		Hue:          result.Hue,
		Stage:        result.Stage,
		Confidence:   result.Confidence,
		DaysToPeak:   result.DaysToPeak,
		CreationTime: time.Now(),
	}

	if up != nil && s.store != nil {
		key := record.Id.String() + up.ext
		if err := s.store.PutObject(ctx, s.bucket, key, bytes.NewReader(up.data)); err != nil {
			// Archival is best effort; the classification itself succeeded.
			slog.Error("error archiving uploaded image", "classification_id", record.Id, "error", err)
		} else {
			record.ImageObjectKey = sql.NullString{String: key, Valid: true}
		}
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		slog.Error("error recording classification", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to record classification")
	}

	slog.Info("classified sample", "classification_id", record.Id, "source", record.Source, "stage", record.Stage, "hue", record.Hue)
	return convertResult(record, result), nil
}

func (s *ClassifierService) parseSample(r *http.Request) (core.ColorSample, string, *upload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return s.parseMultipartSample(r)
	}

	req, err := ParseRequest[api.ClassifyColorRequest](r)
	if err != nil {
		return core.ColorSample{}, "", nil, err
	}

	switch {
	case req.Color != "":
		c, err := core.ParseHexColor(req.Color)
		if err != nil {
			return core.ColorSample{}, "", nil, classificationError(err)
		}
		return core.NewColorSample(c), c.Hex(), nil, nil
	case req.RGB != nil:
		c, err := core.NewRGBColor(req.RGB.R, req.RGB.G, req.RGB.B)
		if err != nil {
			return core.ColorSample{}, "", nil, classificationError(err)
		}
		return core.NewColorSample(c), c.Hex(), nil, nil
	default:
		return core.ColorSample{}, "", nil, CodedErrorf(http.StatusBadRequest, "provide either an image file or a color value")
	}
}

func (s *ClassifierService) parseMultipartSample(r *http.Request) (core.ColorSample, string, *upload, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return core.ColorSample{}, "", nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form: %v", err)
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedImageExts[ext] {
			return core.ColorSample{}, "", nil, CodedErrorf(http.StatusBadRequest,
				"unsupported image type %q, allowed: png, jpg, jpeg, gif, bmp", ext)
		}

		data, readErr := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
		if readErr != nil {
			slog.Error("error reading uploaded image", "error", readErr)
			return core.ColorSample{}, "", nil, CodedErrorf(http.StatusInternalServerError, "unable to read image file")
		}
		if int64(len(data)) > s.maxUploadBytes {
			return core.ColorSample{}, "", nil, CodedErrorf(http.StatusRequestEntityTooLarge,
				"image exceeds the %d byte upload limit", s.maxUploadBytes)
		}

		return core.NewImageSample(data), "", &upload{data: data, ext: ext}, nil
	}
	if !errors.Is(err, http.ErrMissingFile) {
		return core.ColorSample{}, "", nil, CodedErrorf(http.StatusBadRequest, "unable to read image file: %v", err)
	}

	// No file; the form may still carry a color value, as the original picker
	// form posts do.
	if hex := r.FormValue("color"); hex != "" {
		c, err := core.ParseHexColor(hex)
		if err != nil {
			return core.ColorSample{}, "", nil, classificationError(err)
		}
		return core.NewColorSample(c), c.Hex(), nil, nil
	}

	return core.ColorSample{}, "", nil, CodedErrorf(http.StatusBadRequest, "provide either an image file or a color value")
}

func (s *ClassifierService) ListStages(r *http.Request) (any, error) {
	return convertStages(core.Stages()), nil
}

type listClassificationsQuery struct {
	Stage  int    `schema:"stage"`
	Source string `schema:"source"`
	Limit  int    `schema:"limit"`
}

func (s *ClassifierService) ListClassifications(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[listClassificationsQuery](r)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	query := s.db.WithContext(r.Context()).Model(&database.Classification{})
	if params.Stage != 0 {
		query = query.Where("stage = ?", params.Stage)
	}
	if params.Source != "" {
		query = query.Where("source = ?", strings.ToUpper(params.Source))
	}

	var records []database.Classification
	if err := query.Order("creation_time DESC").Limit(limit).Find(&records).Error; err != nil {
		slog.Error("error listing classifications", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving classifications")
	}

	return convertClassifications(records), nil
}

func (s *ClassifierService) GetClassification(r *http.Request) (any, error) {
	id, err := URLParamUUID(r, "classification_id")
	if err != nil {
		return nil, err
	}

	var record database.Classification
	if err := s.db.WithContext(r.Context()).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "classification not found")
		}
		slog.Error("error getting classification", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving classification record")
	}

	return convertClassification(record), nil
}

func (s *ClassifierService) GetClassificationImage(w http.ResponseWriter, r *http.Request) {
	id, err := URLParamUUID(r, "classification_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var record database.Classification
	if err := s.db.WithContext(r.Context()).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "classification not found", http.StatusNotFound)
			return
		}
		slog.Error("error getting classification", "error", err)
		http.Error(w, "error retrieving classification record", http.StatusInternalServerError)
		return
	}

	if s.store == nil || !record.ImageObjectKey.Valid {
		http.Error(w, "no archived image for this classification", http.StatusNotFound)
		return
	}

	obj, err := s.store.GetObject(r.Context(), s.bucket, record.ImageObjectKey.String)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			http.Error(w, "archived image not found", http.StatusNotFound)
			return
		}
		slog.Error("error fetching archived image", "error", err)
		http.Error(w, "error retrieving archived image", http.StatusInternalServerError)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", contentTypeForExt(filepath.Ext(record.ImageObjectKey.String)))
	if _, err := io.Copy(w, obj); err != nil {
		slog.Error("error writing archived image response", "error", err)
	}
}

func sourceOf(kind core.SampleKind) string {
	if kind == core.SampleImage {
		return database.SourceImage
	}
	return database.SourceColor
}

func classificationError(err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidColorFormat):
		return CodedErrorf(http.StatusBadRequest,
			"%v: provide a 6-digit hex color such as #FFD700, or rgb channels in [0, 255]", err)
	case errors.Is(err, core.ErrInvalidImage):
		return CodedError(http.StatusBadRequest, err)
	case errors.Is(err, core.ErrNoSample):
		return CodedErrorf(http.StatusBadRequest, "provide either an image file or a color value")
	case errors.Is(err, core.ErrNoColorDetected):
		return CodedErrorf(http.StatusUnprocessableEntity, "%v: try a clearer, better lit photo", err)
	case errors.Is(err, core.ErrHueOutOfRange):
		return CodedErrorf(http.StatusUnprocessableEntity, "could not classify the sample: %v", err)
	default:
		slog.Error("unexpected classification error", "error", err)
		return CodedErrorf(http.StatusInternalServerError, "classification failed")
	}
}

func contentTypeForExt(ext string) string {
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
