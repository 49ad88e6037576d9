package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Default provider endpoints. Yandex handles Russian addresses better
// and is queried first; Nominatim is the single fallback.
const (
	DefaultYandexEndpoint    = "https://geocode-maps.yandex.ru/1.x/"
	DefaultNominatimEndpoint = "https://nominatim.openstreetmap.org/search"
)

// Result is a best-match coordinate pair for an address, flagged with
// whether it falls inside the city bounding box.
type Result struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	DisplayName      string  `json:"displayName"`
	IsInStPetersburg bool    `json:"isInStPetersburg"`
}

// Geocoder resolves addresses through two providers in order. No
// retries beyond the single fallback; a missing result is not an
// error and never blocks saving a listing.
type Geocoder struct {
	Client            *http.Client
	YandexEndpoint    string
	NominatimEndpoint string
	APIKey            string
	Logger            *slog.Logger
}

// Geocode resolves the address, suffixing the city name unless the
// input already carries it. Returns (nil, nil) when neither provider
// finds a match.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*Result, error) {
	if g == nil || g.Client == nil {
		return nil, errors.New("geo: http client not configured")
	}
	search := address
	if !hasCityMarker(address) {
		search = address + ", Санкт-Петербург, Россия"
	}

	result, err := g.queryYandex(ctx, search)
	if err == nil && result != nil {
		return result, nil
	}
	if err != nil && g.Logger != nil {
		g.Logger.Warn("yandex geocoder failed, falling back to nominatim", "error", err)
	}

	return g.queryNominatim(ctx, search)
}

type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					MetaDataProperty struct {
						GeocoderMetaData struct {
							Text string `json:"text"`
						} `json:"GeocoderMetaData"`
					} `json:"metaDataProperty"`
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

func (g *Geocoder) queryYandex(ctx context.Context, address string) (*Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("geocode", address)
	params.Set("lang", "ru_RU")
	params.Set("results", "1")
	if g.APIKey != "" {
		params.Set("apikey", g.APIKey)
	}

	var decoded yandexResponse
	if err := g.getJSON(ctx, g.yandexEndpoint()+"?"+params.Encode(), &decoded); err != nil {
		return nil, err
	}
	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return nil, nil
	}
	obj := members[0].GeoObject
	// pos is "longitude latitude", space separated
	fields := strings.Fields(obj.Point.Pos)
	if len(fields) != 2 {
		return nil, fmt.Errorf("geo: malformed point %q", obj.Point.Pos)
	}
	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse latitude: %w", err)
	}
	return &Result{
		Lat:              lat,
		Lng:              lng,
		DisplayName:      obj.MetaDataProperty.GeocoderMetaData.Text,
		IsInStPetersburg: WithinStPetersburg(lat, lng),
	}, nil
}

type nominatimEntry struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *Geocoder) queryNominatim(ctx context.Context, address string) (*Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", address)
	params.Set("limit", "1")
	params.Set("countrycodes", "ru")
	params.Set("addressdetails", "1")

	var entries []nominatimEntry
	if err := g.getJSON(ctx, g.nominatimEndpoint()+"?"+params.Encode(), &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(entries[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(entries[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geo: parse longitude: %w", err)
	}
	return &Result{
		Lat:              lat,
		Lng:              lng,
		DisplayName:      entries[0].DisplayName,
		IsInStPetersburg: WithinStPetersburg(lat, lng),
	}, nil
}

func (g *Geocoder) getJSON(ctx context.Context, rawURL string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "rentalhub/1.0")

	resp, err := g.Client.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("geo: provider returned status %d: %s", resp.StatusCode, string(snippet))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *Geocoder) yandexEndpoint() string {
	if g.YandexEndpoint != "" {
		return g.YandexEndpoint
	}
	return DefaultYandexEndpoint
}

func (g *Geocoder) nominatimEndpoint() string {
	if g.NominatimEndpoint != "" {
		return g.NominatimEndpoint
	}
	return DefaultNominatimEndpoint
}
