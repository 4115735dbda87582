package server

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jacoelho/xml2json"
	"github.com/jacoelho/xml2json/errors"
)

const (
	detailNotXML     = "File must be an XML file."
	detailNotUTF8    = "File must be UTF-8 encoded."
	detailNoFile     = "Field \"file\" is required."
	detailTooLarge   = "File is too large."
	detailBadForm    = "Request must be multipart/form-data."
	detailParseError = "XML parsing error: "
)

type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		s.rejectForm(w, r, err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.rejectForm(w, r, err)
		return
	}
	defer func() { _ = file.Close() }()

	log := s.log.With(zap.String("filename", header.Filename), zap.Int64("size", header.Size))
	if !strings.HasSuffix(header.Filename, ".xml") {
		log.Info("rejected upload", zap.String("reason", "extension"))
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: detailNotXML})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Warn("read upload", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: err.Error()})
		return
	}

	v, err := xml2json.ConvertBytes(data, s.opts)
	if err != nil {
		if errors.HasCode(err, errors.ErrInvalidUTF8) {
			log.Info("rejected upload", zap.String("reason", "encoding"))
			writeJSON(w, http.StatusBadRequest, errorBody{Detail: detailNotUTF8})
			return
		}
		log.Warn("conversion failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: detailParseError + err.Error()})
		return
	}

	log.Debug("converted", zap.Stringer("kind", v.Kind()))
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) rejectForm(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Detail: detailTooLarge})
	case stderrors.Is(err, http.ErrMissingFile):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: detailNoFile})
	case stderrors.Is(err, http.ErrNotMultipart):
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: detailBadForm})
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: err.Error()})
	}
	s.log.Info("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
