// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

type identityInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	HasKey      bool   `json:"hasKey"`
}

type infoReply struct {
	File            string         `json:"file"`
	Network         string         `json:"network"`
	DefaultIdentity string         `json:"default_identity"`
	Connections     []string       `json:"connections"`
	Identities      []identityInfo `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reply := infoReply{
		File:            m.file,
		Network:         m.config.Network,
		DefaultIdentity: m.config.DefaultIdentity,
		Connections:     m.config.Connections,
		Identities:      make([]identityInfo, 0, len(m.config.Identities)),
	}
	for name, id := range m.config.Identities {
		reply.Identities = append(reply.Identities, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			HasKey:      "" != id.Data,
		})
	}
	sort.Slice(reply.Identities, func(i, j int) bool {
		return reply.Identities[i].Name < reply.Identities[j].Name
	})

	return printJson(m.w, reply)
}

func runRecorddInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}
