package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiblymohammed/electionServices/pkg/client"
	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/order"
)

func newTestClient(t *testing.T, handler http.Handler, options ...client.Option) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL, options...)
	require.NoError(t, err)
	return c
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	_, err := client.New("")
	require.Error(t, err)
}

func TestRequestCarriesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		io.WriteString(w, `{"id": 7, "status": "pending_resources", "items": []}`)
	}), client.WithAuthToken("tok-123"))

	_, err := c.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error": "Order is not ready for resource upload"}`)
	}))

	_, err := c.GetOrder(context.Background(), 7)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
	assert.Equal(t, "Order is not ready for resource upload", apiErr.ServerMessage())
}

func TestResourceFieldsNotFoundMeansNoSchema(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	sets, err := c.ResourceFields(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, sets)
}

func TestResourceFieldsDecodesDefinitions(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/7/resources/", r.URL.Path)
		io.WriteString(w, `[
			{"order_item_id": 31, "fields": [
				{"id": 5, "field_name": "Candidate Photo", "field_type": "image",
				 "is_required": true, "order": 1, "max_file_size_mb": 5,
				 "allowed_extensions": ["jpg", "png"]}
			]}
		]`)
	}))

	sets, err := c.ResourceFields(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, int64(31), sets[0].OrderItemID)
	require.Len(t, sets[0].Fields, 1)
	assert.Equal(t, "Candidate Photo", sets[0].Fields[0].Name)
	assert.Equal(t, 5, sets[0].Fields[0].MaxFileSizeMB)
}

func TestUploadResourcesPostsMultipartBody(t *testing.T) {
	var gotContentType, gotBody string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/7/upload-resources/", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, `{"success": true, "message": "Resources uploaded successfully",
			"order_status": "ready_for_processing", "all_resources_uploaded": true}`)
	}))

	payload := form.Payload{
		ContentType: "multipart/form-data; boundary=xyz",
		Body:        []byte("--xyz--\r\n"),
	}
	result, err := c.UploadResources(context.Background(), 7, 31, payload)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.AllUploaded)
	assert.Equal(t, "multipart/form-data; boundary=xyz", gotContentType)
	assert.Equal(t, "--xyz--\r\n", gotBody)
}

func TestMyOrdersHandlesEnvelopeAndBareList(t *testing.T) {
	bodies := []string{
		`{"count": 2, "results": [{"id": 1, "items": []}, {"id": 2, "items": []}]}`,
		`[{"id": 1, "items": []}, {"id": 2, "items": []}]`,
	}
	for _, body := range bodies {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))
		orders, err := c.MyOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, int64(1), orders[0].ID)
	}
}

func TestPackagesDecodesCatalog(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packages/", r.URL.Path)
		io.WriteString(w, `{"results": [
			{"id": 3, "name": "Starter Pack", "price": "4999.00", "is_active": true,
			 "created_at": "2025-01-02T10:00:00Z", "updated_at": "2025-01-02T10:00:00Z"}
		]}`)
	}))

	pkgs, err := c.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "Starter Pack", pkgs[0].Name)
	assert.Equal(t, "4999.00", pkgs[0].Price.String())
}

func TestVerifyPhoneAdoptsToken(t *testing.T) {
	var sawAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/verify-phone/":
			raw, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(raw), `"phone_number":"9876543210"`)
			io.WriteString(w, `{"token": "fresh-token", "user": {"id": 1, "phone_number": "9876543210"}}`)
		case "/auth/me/":
			sawAuth = r.Header.Get("Authorization")
			io.WriteString(w, `{"id": 1, "phone_number": "9876543210"}`)
		default:
			http.NotFound(w, r)
		}
	}))

	resp, err := c.VerifyPhone(context.Background(), "9876543210", "firebase-id-token")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.Token)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh-token", sawAuth)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())
	_, err := c.CreateOrder(context.Background(), client.CreateOrderRequest{})
	require.Error(t, err)
}

func TestAdminOrdersFilterBuildsQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[]`)
	}))

	_, err := c.AdminOrders(context.Background(), client.AdminOrderFilter{
		Status:     order.StatusAssigned,
		AssignedTo: 9,
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "status=assigned")
	assert.Contains(t, gotQuery, "assigned_to=9")
}

func TestNetworkErrorsSurfaceAsSuchToClassifier(t *testing.T) {
	c, err := client.New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.GetOrder(context.Background(), 7)
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "connection failure must not be an APIError")
	assert.True(t, strings.Contains(err.Error(), "GET /orders/7/"))

	submitErr := form.ClassifyUploadError(err)
	assert.Equal(t, form.CategoryNetwork, submitErr.Category)
}
