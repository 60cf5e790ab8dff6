package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jopela/urlinfer/internal/domain"
	"github.com/jopela/urlinfer/internal/ports"
	"github.com/jopela/urlinfer/pkg/log"
)

const (
	apiPath = "/w/api.php"

	// SitePlaceholder in a configured endpoint is replaced by the source host.
	SitePlaceholder = "{site}"

	// DefaultUserAgent identifies the tool to Wikimedia servers.
	DefaultUserAgent = "urlinfer/1.0 (https://github.com/jopela/urlinfer)"

	// maxContinuations bounds llcontinue paging for a single title.
	maxContinuations = 20
)

// LangLinkResolver implements ports.LangLinkResolver with the MediaWiki
// action API (prop=langlinks).
type LangLinkResolver struct {
	client    ports.HTTPClient
	endpoint  string
	userAgent string
	pacer     ports.Pacer
	logger    log.Logger
}

// Option configures a LangLinkResolver.
type Option func(*LangLinkResolver)

// WithEndpoint sets the API URL. It may contain SitePlaceholder.
// If not provided, https://{site}/w/api.php is used.
func WithEndpoint(endpoint string) Option {
	return func(r *LangLinkResolver) {
		r.endpoint = endpoint
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(r *LangLinkResolver) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// WithPacer makes every continuation request wait on p. The first request of
// a lookup is left to the caller, which is expected to share p (see
// resolver.Config.Limiter), so all requests of a run are spaced alike.
func WithPacer(p ports.Pacer) Option {
	return func(r *LangLinkResolver) {
		r.pacer = p
	}
}

// WithLogger sets a logger for request tracing.
func WithLogger(logger log.Logger) Option {
	return func(r *LangLinkResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewLangLinkResolver creates a resolver sending requests through client.
func NewLangLinkResolver(client ports.HTTPClient, opts ...Option) *LangLinkResolver {
	r := &LangLinkResolver{
		client:    client,
		userAgent: DefaultUserAgent,
		logger:    log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Endpoint returns the API URL used for lookups on site.
func (r *LangLinkResolver) Endpoint(site string) string {
	if r.endpoint == "" {
		return "https://" + site + apiPath
	}
	return strings.ReplaceAll(r.endpoint, SitePlaceholder, site)
}

type apiResponse struct {
	Continue map[string]string `json:"continue"`
	Query    struct {
		Pages []apiPage `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiPage struct {
	Title     string        `json:"title"`
	Missing   bool          `json:"missing"`
	Invalid   bool          `json:"invalid"`
	LangLinks []apiLangLink `json:"langlinks"`
}

type apiLangLink struct {
	Lang  string `json:"lang"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Resolve implements ports.LangLinkResolver.
//
// When the source site's own language is allowed, the source article comes
// first. Links follow in the order the API lists them.
func (r *LangLinkResolver) Resolve(ctx context.Context, q ports.LangLinkQuery) ([]string, error) {
	allowed := make(map[string]bool, len(q.Languages))
	for _, l := range q.Languages {
		allowed[l] = true
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("prop", "langlinks")
	params.Set("llprop", "url")
	params.Set("lllimit", "max")
	params.Set("redirects", "1")
	params.Set("titles", q.Title)

	endpoint := r.Endpoint(q.Site)
	out := []string{}
	for page := 0; ; page++ {
		if page > 0 && r.pacer != nil {
			if err := r.pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}
		resp, err := r.fetch(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}
		if resp.Error != nil {
			return nil, fmt.Errorf("api error %s: %s", resp.Error.Code, resp.Error.Info)
		}
		if len(resp.Query.Pages) == 0 {
			return nil, fmt.Errorf("%w: %q on %s", domain.ErrPageNotFound, q.Title, q.Site)
		}
		p := resp.Query.Pages[0]
		if p.Missing || p.Invalid {
			return nil, fmt.Errorf("%w: %q on %s", domain.ErrPageNotFound, q.Title, q.Site)
		}

		if page == 0 {
			if lang := siteLanguage(q.Site); lang != "" && allowed[lang] {
				out = append(out, articleURL(q.Site, p.Title))
			}
		}
		for _, ll := range p.LangLinks {
			if !allowed[ll.Lang] {
				continue
			}
			u := ll.URL
			if u == "" {
				u = articleURL(withSiteLanguage(q.Site, ll.Lang), ll.Title)
			}
			out = append(out, u)
		}

		next := resp.Continue["llcontinue"]
		if next == "" {
			break
		}
		if page+1 >= maxContinuations {
			r.logger.Warn("langlinks truncated",
				log.String("site", q.Site),
				log.String("title", q.Title),
				log.Int("pages", page+1),
				log.Int("found", len(out)),
			)
			break
		}
		params.Set("llcontinue", next)
		if c, ok := resp.Continue["continue"]; ok {
			params.Set("continue", c)
		}
	}

	r.logger.Debug("langlinks", log.String("site", q.Site), log.String("title", q.Title), log.Int("found", len(out)))
	return out, nil
}

func (r *LangLinkResolver) fetch(ctx context.Context, endpoint string, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// articleURL builds https://site/wiki/Title with MediaWiki title escaping.
func articleURL(site, title string) string {
	u := url.URL{Path: "/wiki/" + strings.ReplaceAll(title, " ", "_")}
	return "https://" + site + u.EscapedPath()
}

// siteLanguage returns "en" for en.wikipedia.org and "" for hosts without a
// language label.
func siteLanguage(site string) string {
	labels := strings.Split(site, ".")
	if len(labels) != 3 {
		return ""
	}
	return labels[0]
}

// withSiteLanguage swaps or adds the language label of site.
func withSiteLanguage(site, lang string) string {
	labels := strings.Split(site, ".")
	if len(labels) == 3 {
		labels[0] = lang
		return strings.Join(labels, ".")
	}
	return lang + "." + site
}
