package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/statements"
	"github.com/nzai/finstat/utils"
	"github.com/nzai/netop"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Mops 公開資訊觀測站 financial report source
type Mops struct {
	timeout   time.Duration
	endpoint  string
	reportID  string
	userAgent string
}

// MopsOption configure mops source
type MopsOption func(*Mops)

// WithTimeout bound every request, zero means no bound
func WithTimeout(timeout time.Duration) MopsOption {
	return func(s *Mops) {
		s.timeout = timeout
	}
}

// WithEndpoint use statement endpoint
func WithEndpoint(endpoint string) MopsOption {
	return func(s *Mops) {
		s.endpoint = endpoint
	}
}

// WithReportID use report code
func WithReportID(reportID string) MopsOption {
	return func(s *Mops) {
		s.reportID = reportID
	}
}

// WithUserAgent send user agent header
func WithUserAgent(userAgent string) MopsOption {
	return func(s *Mops) {
		s.userAgent = userAgent
	}
}

// NewMops create mops source
func NewMops(options ...MopsOption) *Mops {
	s := &Mops{
		endpoint: constants.MopsEndpoint,
		reportID: constants.MopsReportID,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// URL report page url of company in quarter
func (s Mops) URL(company string, quarter statements.Quarter) string {
	return fmt.Sprintf("%s?step=1&CO_ID=%s&SYEAR=%d&SSEASON=%d&REPORT_ID=%s",
		s.endpoint,
		url.QueryEscape(company),
		quarter.Year,
		quarter.Season,
		url.QueryEscape(s.reportID))
}

// Fetch post once for report page, body is always big5
func (s Mops) Fetch(ctx context.Context, company string, quarter statements.Quarter) (string, error) {
	pageURL := s.URL(company, quarter)

	parameters := []netop.RequestParam{netop.ValidStatusCode(http.StatusOK)}
	if s.userAgent != "" {
		parameters = append(parameters, netop.Header("User-Agent", s.userAgent))
	}

	ctx, cancel := utils.WithTimeout(ctx, s.timeout)
	defer cancel()

	html, err := s.post(ctx, pageURL, parameters...)
	if err != nil {
		zap.L().Error("fetch financial report failed",
			zap.Error(err),
			zap.String("company", company),
			zap.String("quarter", quarter.String()),
			zap.String("url", pageURL))

		e := statements.NewError(constants.ErrUpstreamFetch, "", err)
		e.Company = company
		e.Quarter = quarter
		return "", e
	}

	return html, nil
}

// post once, no retry, the body is decoded as big5 whatever charset is declared
func (s Mops) post(ctx context.Context, pageURL string, parameters ...netop.RequestParam) (string, error) {
	buffer, err := utils.PostBytes(ctx, pageURL, parameters...)
	if err != nil {
		return "", err
	}

	decoded, err := traditionalchinese.Big5.NewDecoder().Bytes(buffer)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
