package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"

	"github.com/pkg/errors"
)

// Translate uploads the document as multipart form data. The response is not enveloped.
func (c *Client) Translate(ctx context.Context, accessToken string, req *entity.TranslationRequest) (*entity.TranslationResult, error) {
	body, contentType, err := encodeTranslationForm(req)
	if err != nil {
		return nil, err
	}

	cl := call{
		method:      http.MethodPost,
		path:        c.endpoints.Translate,
		token:       accessToken,
		body:        body,
		contentType: contentType,
	}

	var resp translationResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}

	return resp.toEntity(), nil
}

// Retranslate asks the backend to translate a file it already holds. The response is not enveloped.
func (c *Client) Retranslate(ctx context.Context, accessToken string, input service.RetranslateInput) (*entity.TranslationResult, error) {
	body := retranslateRequest{
		OriginalFileName:   input.OriginalFileName,
		TargetLanguage:     input.TargetLanguage,
		UseSimpleLanguage:  input.UseSimpleLanguage,
		SourceLanguageHint: input.SourceLanguageHint,
	}
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Retranslate, accessToken, body, false)
	if err != nil {
		return nil, err
	}

	var resp translationResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}

	return resp.toEntity(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeTranslationForm(req *entity.TranslationRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(req.FileName)))
	contentType := req.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(req.Content)
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := part.Write(req.Content); err != nil {
		return nil, "", errors.WithStack(err)
	}

	fields := [][2]string{
		{"fileType", string(req.FileType)},
		{"targetLanguage", req.TargetLanguage},
	}
	if req.UseSimpleLanguage != nil {
		fields = append(fields, [2]string{"useSimpleLanguage", strconv.FormatBool(*req.UseSimpleLanguage)})
	}
	if req.SourceLanguageHint != "" {
		fields = append(fields, [2]string{"sourceLanguageHint", req.SourceLanguageHint})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return buf, w.FormDataContentType(), nil
}
