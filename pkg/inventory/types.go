/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package inventory

import "github.com/routeops/invsync/pkg/models"

// Config holds connection settings for the inventory API.
type Config struct {
	Endpoint           string          `json:"endpoint"`
	APIToken           string          `json:"api_token"`
	ExternalIDField    string          `json:"external_id_field"`
	Timeout            models.Duration `json:"timeout"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify"`
}

// listResult is one entry of a paginated inventory list response. Device
// types carry the hardware model instead of a name.
type listResult struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}

func (r *listResult) ref() models.ObjectRef {
	name := r.Name
	if name == "" {
		name = r.Model
	}

	return models.ObjectRef{ID: r.ID, Name: name}
}

// listResponse is the inventory API's pagination envelope.
type listResponse struct {
	Count    int          `json:"count"`
	Next     string       `json:"next"`
	Previous string       `json:"previous"`
	Results  []listResult `json:"results"`
}

// createResponse is the body returned by a successful create.
type createResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ipResult is one entry of an ip-address list response.
type ipResult struct {
	ID             int64 `json:"id"`
	AssignedObject struct {
		Device struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"device"`
	} `json:"assigned_object"`
}
