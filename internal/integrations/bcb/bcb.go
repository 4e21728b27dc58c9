package bcb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/credit-simulator/internal/config"
	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

// BCBClient reads rate series from the Banco Central do Brasil SGS web service
type BCBClient struct {
	url    string
	series int
	client *http.Client
	log    *logrus.Logger
	now    func() time.Time
}

// NewBCBClient initializes a new BCB client
func NewBCBClient(cfg *config.Config, log *logrus.Logger) *BCBClient {
	return &BCBClient{
		url:    cfg.BCBURL,
		series: cfg.BCBSeries,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// buildSOAPRequest creates a getUltimoValorXML request for the series
func (c *BCBClient) buildSOAPRequest() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:pub="http://publico.ws.casosdeuso.sgs.pec.bcb.gov.br">
			<soapenv:Body>
				<pub:getUltimoValorXML>
					<in0>%d</in0>
				</pub:getUltimoValorXML>
			</soapenv:Body>
		</soapenv:Envelope>`, c.series)
}

// sendRequest sends the SOAP request to BCB
func (c *BCBClient) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `""`)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("BCB XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse unwraps the SOAP envelope and reads the series value and
// reference date from the embedded XML document
func (c *BCBClient) parseXMLResponse(rawBody []byte) (models.ReferenceRate, error) {
	envelope := newDocument()
	if err := envelope.ReadFromBytes(rawBody); err != nil {
		return models.ReferenceRate{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	ret := envelope.FindElement("//getUltimoValorXMLReturn")
	if ret == nil {
		return models.ReferenceRate{}, fmt.Errorf("getUltimoValorXMLReturn not found in XML")
	}

	// The series document declares ISO-8859-1 but the envelope text is
	// already decoded.
	inner := etree.NewDocument()
	inner.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := inner.ReadFromString(strings.TrimSpace(ret.Text())); err != nil {
		return models.ReferenceRate{}, fmt.Errorf("failed to parse series XML: %w", err)
	}

	serie := inner.FindElement("//SERIE")
	if serie == nil {
		return models.ReferenceRate{}, fmt.Errorf("no series data found in XML")
	}
	valueElement := serie.FindElement("./VALOR")
	if valueElement == nil {
		return models.ReferenceRate{}, fmt.Errorf("value element not found in XML")
	}

	annual, err := parseBrazilianNumber(valueElement.Text())
	if err != nil {
		return models.ReferenceRate{}, fmt.Errorf("failed to parse rate: %w", err)
	}

	return models.ReferenceRate{
		Series:         c.series,
		AnnualPercent:  annual,
		MonthlyPercent: MonthlyEquivalent(annual),
		ReferenceDate:  referenceDate(serie),
		FetchedAt:      c.now(),
	}, nil
}

// GetLatestRate retrieves the latest value of the configured series
func (c *BCBClient) GetLatestRate(ctx context.Context) (models.ReferenceRate, error) {
	body, err := c.sendRequest(ctx, c.buildSOAPRequest())
	if err != nil {
		return models.ReferenceRate{}, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return models.ReferenceRate{}, err
	}

	c.log.Infof("Retrieved series %d rate: %.2f%% a.a. (%.4f%% a.m.)", rate.Series, rate.AnnualPercent, rate.MonthlyPercent)
	return rate, nil
}

// MonthlyEquivalent converts an annual percent rate into the compound monthly
// percent rate, rounded to four decimals.
func MonthlyEquivalent(annualPercent float64) float64 {
	monthly := (math.Pow(1+annualPercent/100, 1.0/12) - 1) * 100
	return math.Round(monthly*10000) / 10000
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(label) {
		case "iso-8859-1", "latin1":
			return charmap.ISO8859_1.NewDecoder().Reader(input), nil
		case "utf-8", "":
			return input, nil
		}
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return doc
}

func parseBrazilianNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return strconv.ParseFloat(s, 64)
}

func referenceDate(serie *etree.Element) string {
	var parts [3]int
	for i, path := range []string{"./DATA/DIA", "./DATA/MES", "./DATA/ANO"} {
		el := serie.FindElement(path)
		if el == nil {
			return ""
		}
		n, err := strconv.Atoi(strings.TrimSpace(el.Text()))
		if err != nil {
			return ""
		}
		parts[i] = n
	}
	return fmt.Sprintf("%02d/%02d/%04d", parts[0], parts[1], parts[2])
}
