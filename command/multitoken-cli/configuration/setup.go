// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Connect         string              `json:"connect"`
	Fingerprint     string              `json:"fingerprint,omitempty"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Private - decrypted form of an identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"-"`
	Seed        string              `json:"seed"`
	Account     account.Address     `json:"account"`
	Description string              `json:"description"`
}

// Summary - public view of an identity for listing
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Default     bool   `json:"default"`
	Private     bool   `json:"private"`
}

// New - empty configuration for the setup command
func New(connect string, fingerprint string) *Configuration {
	return &Configuration{
		Connect:     connect,
		Fingerprint: fingerprint,
		Identities:  make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	config := &Configuration{}
	err = json.NewDecoder(f).Decode(config)
	if nil != err {
		return nil, err
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	return config, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an address
func (config *Configuration) Account(name string) (account.Address, error) {
	id, err := config.Identity(name)
	if nil != err {
		return account.Zero, err
	}

	return account.AddressFromString(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
//
// the first identity added becomes the default
func (config *Configuration) AddIdentity(name string, description string, key *account.PrivateKey, password string) error {

	if "" == name {
		return fault.ErrInvalidIdentityName
	}
	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(hex.EncodeToString(key.Seed()), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     key.Address().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if "" == name {
		return fault.ErrInvalidIdentityName
	}
	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	address, err := account.AddressFromString(acc)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     address.String(),
	}

	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	private, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}
	encrypted, err := encryptData(private.Seed, secretKey)
	if nil != err {
		return err
	}

	id := config.Identities[name]
	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = id
	return nil
}

// List - identities sorted by name
func (config *Configuration) List() []Summary {
	names := make([]string, 0, len(config.Identities))
	for name := range config.Identities {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Summary, 0, len(names))
	for _, name := range names {
		id := config.Identities[name]
		list = append(list, Summary{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Default:     name == config.DefaultIdentity,
			Private:     "" != id.Data,
		})
	}
	return list
}
