// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {

	accountFlag := func(name string, usage string) cli.StringFlag {
		return cli.StringFlag{
			Name:  name,
			Value: "",
			Usage: usage,
		}
	}
	idFlag := cli.StringFlag{
		Name:  "id, t",
		Value: "",
		Usage: "*token `ID` (decimal or 0x hex)",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*number of units `AMOUNT` (decimal or 0x hex)",
	}

	return []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise multitoken-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*multitokend host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " expected server certificate `FINGERPRINT` (hex)",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing hex `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing hex `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+generate a new key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities",
			Action: runList,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of one token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", " identity name or address `ACCOUNT` default is global identity"),
				idFlag,
			},
			Action: runBalance,
		},
		{
			Name:      "allowance",
			Usage:     "display units a spender may move for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", " identity name or address `ACCOUNT` default is global identity"),
				accountFlag("spender, s", "*identity name or address `ACCOUNT`"),
				idFlag,
			},
			Action: runAllowance,
		},
		{
			Name:      "is-operator",
			Usage:     "display whether a spender is an operator for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", " identity name or address `ACCOUNT` default is global identity"),
				accountFlag("spender, s", "*identity name or address `ACCOUNT`"),
			},
			Action: runIsOperator,
		},
		{
			Name:      "supply",
			Usage:     "display minted, burned and total units of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
			},
			Action: runSupply,
		},
		{
			Name:      "holdings",
			Usage:     "list every token held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", " identity name or address `ACCOUNT` default is global identity"),
			},
			Action: runHoldings,
		},
		{
			Name:      "events",
			Usage:     "list committed ledger events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "transfer",
			Usage:     "transfer units from the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("receiver, r", "*identity name or address to receive the units `ACCOUNT`"),
				idFlag,
				amountFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer units on behalf of another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("from, f", "*identity name or address of the owner `ACCOUNT`"),
				accountFlag("receiver, r", "*identity name or address to receive the units `ACCOUNT`"),
				idFlag,
				amountFlag,
			},
			Action: runTransferFrom,
		},
		{
			Name:      "approve",
			Usage:     "set the allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("spender, s", "*identity name or address `ACCOUNT`"),
				idFlag,
				amountFlag,
			},
			Action: runApprove,
		},
		{
			Name:      "set-operator",
			Usage:     "grant or revoke operator rights",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("spender, s", "*identity name or address `ACCOUNT`"),
				cli.BoolFlag{
					Name:  "revoke, x",
					Usage: " revoke instead of grant",
				},
			},
			Action: runSetOperator,
		},
		{
			Name:      "mint",
			Usage:     "create units (current identity must be a minter)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("receiver, r", "*identity name or address to receive the units `ACCOUNT`"),
				idFlag,
				amountFlag,
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy units (current identity must be a minter)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag("owner, o", "*identity name or address holding the units `ACCOUNT`"),
				idFlag,
				amountFlag,
			},
			Action: runBurn,
		},
		{
			Name:   "info",
			Usage:  "display multitokend status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display multitoken-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
