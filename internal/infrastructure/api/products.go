package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// GetProducts fetches one page of the catalog, optionally filtered by a
// search keyword. Page numbers start at 1; zero means the first page.
func (c *Client) GetProducts(ctx context.Context, keyword string, pageNumber int) (ProductPage, error) {
	query := url.Values{}
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	if pageNumber > 0 {
		query.Set("pageNumber", strconv.Itoa(pageNumber))
	}

	var page ProductPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", query, "", nil, &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, productID string) (Product, error) {
	var product Product
	err := c.doJSON(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID), nil, "", nil, &product)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

// CreateProduct creates a new sample product (admin). The backend fills in
// placeholder fields; the caller edits them afterwards.
func (c *Client) CreateProduct(ctx context.Context, token string) (Product, error) {
	var product Product
	if err := c.doJSON(ctx, http.MethodPost, "/api/products", nil, token, nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct updates a product (admin)
func (c *Client) UpdateProduct(ctx context.Context, token string, product Product) (Product, error) {
	var updated Product
	err := c.doJSON(ctx, http.MethodPut, "/api/products/"+url.PathEscape(product.ID), nil, token, product, &updated)
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a product (admin)
func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(productID), nil, token, nil, nil)
}

// UploadImage uploads a product image (admin) and returns its stored path
func (c *Client) UploadImage(ctx context.Context, token, filename string, content io.Reader) (UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("api: failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return UploadResponse{}, fmt.Errorf("api: failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadResponse{}, fmt.Errorf("api: failed to finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return UploadResponse{}, fmt.Errorf("api: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return UploadResponse{}, decodeError(resp.StatusCode, data)
	}

	var result UploadResponse
	if err := unmarshalBody(data, &result); err != nil {
		return UploadResponse{}, err
	}
	return result, nil
}
