// SPDX-License-Identifier: MIT
// Dev: KryperAI

package txcodec

// Object tags of serialized transactions.
const (
	TagSignedTx         uint32 = 11
	TagSpendTx          uint32 = 12
	TagOracleRegisterTx uint32 = 22
	TagOracleQueryTx    uint32 = 23
	TagOracleResponseTx uint32 = 24
	TagOracleExtendTx   uint32 = 25
	TagNameClaimTx      uint32 = 32
	TagNamePreclaimTx   uint32 = 33
	TagNameUpdateTx     uint32 = 34
	TagNameRevokeTx     uint32 = 35
	TagNameTransferTx   uint32 = 36
	TagContractCreateTx uint32 = 42
	TagContractCallTx   uint32 = 43
)

type fieldKind uint8

const (
	kindInt    fieldKind = iota // unbounded unsigned integer
	kindId                      // 33-byte typed identifier
	kindBinary                  // opaque bytes
	kindString                  // utf-8 text
	kindRaw                     // anything, rendered generically
)

type fieldSpec struct {
	name string
	kind fieldKind
}

type schema struct {
	name   string
	fields []fieldSpec
}

type schemaKey struct {
	tag     uint32
	version uint64
}

func f(name string, kind fieldKind) fieldSpec { return fieldSpec{name: name, kind: kind} }

// schemas lists the field layout after [tag, version] for each known
// transaction type.
var schemas = map[schemaKey]schema{
	{TagSpendTx, 1}: {"SpendTx", []fieldSpec{
		f("sender_id", kindId), f("recipient_id", kindId), f("amount", kindInt),
		f("fee", kindInt), f("ttl", kindInt), f("nonce", kindInt), f("payload", kindBinary),
	}},
	{TagOracleRegisterTx, 1}: {"OracleRegisterTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("query_format", kindBinary),
		f("response_format", kindBinary), f("query_fee", kindInt), f("oracle_ttl_type", kindInt),
		f("oracle_ttl_value", kindInt), f("fee", kindInt), f("ttl", kindInt), f("abi_version", kindInt),
	}},
	{TagOracleQueryTx, 1}: {"OracleQueryTx", []fieldSpec{
		f("sender_id", kindId), f("nonce", kindInt), f("oracle_id", kindId), f("query", kindBinary),
		f("query_fee", kindInt), f("query_ttl_type", kindInt), f("query_ttl_value", kindInt),
		f("response_ttl_type", kindInt), f("response_ttl_value", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagOracleResponseTx, 1}: {"OracleResponseTx", []fieldSpec{
		f("oracle_id", kindId), f("nonce", kindInt), f("query_id", kindBinary), f("response", kindBinary),
		f("response_ttl_type", kindInt), f("response_ttl_value", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagOracleExtendTx, 1}: {"OracleExtendTx", []fieldSpec{
		f("oracle_id", kindId), f("nonce", kindInt), f("oracle_ttl_type", kindInt),
		f("oracle_ttl_value", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNameClaimTx, 1}: {"NameClaimTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("name", kindString),
		f("name_salt", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNameClaimTx, 2}: {"NameClaimTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("name", kindString),
		f("name_salt", kindInt), f("name_fee", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNamePreclaimTx, 1}: {"NamePreclaimTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("commitment_id", kindId),
		f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNameUpdateTx, 1}: {"NameUpdateTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("name_id", kindId), f("name_ttl", kindInt),
		f("pointers", kindRaw), f("client_ttl", kindInt), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNameRevokeTx, 1}: {"NameRevokeTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("name_id", kindId),
		f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagNameTransferTx, 1}: {"NameTransferTx", []fieldSpec{
		f("account_id", kindId), f("nonce", kindInt), f("name_id", kindId),
		f("recipient_id", kindId), f("fee", kindInt), f("ttl", kindInt),
	}},
	{TagContractCreateTx, 1}: {"ContractCreateTx", []fieldSpec{
		f("owner_id", kindId), f("nonce", kindInt), f("code", kindBinary), f("ct_version", kindInt),
		f("fee", kindInt), f("ttl", kindInt), f("deposit", kindInt), f("amount", kindInt),
		f("gas", kindInt), f("gas_price", kindInt), f("call_data", kindBinary),
	}},
	{TagContractCallTx, 1}: {"ContractCallTx", []fieldSpec{
		f("caller_id", kindId), f("nonce", kindInt), f("contract_id", kindId), f("abi_version", kindInt),
		f("fee", kindInt), f("ttl", kindInt), f("amount", kindInt), f("gas", kindInt),
		f("gas_price", kindInt), f("call_data", kindBinary),
	}},
}

var tagNames = map[uint32]string{
	TagSignedTx:         "SignedTx",
	TagSpendTx:          "SpendTx",
	TagOracleRegisterTx: "OracleRegisterTx",
	TagOracleQueryTx:    "OracleQueryTx",
	TagOracleResponseTx: "OracleResponseTx",
	TagOracleExtendTx:   "OracleExtendTx",
	TagNameClaimTx:      "NameClaimTx",
	TagNamePreclaimTx:   "NamePreclaimTx",
	TagNameUpdateTx:     "NameUpdateTx",
	TagNameRevokeTx:     "NameRevokeTx",
	TagNameTransferTx:   "NameTransferTx",
	TagContractCreateTx: "ContractCreateTx",
	TagContractCallTx:   "ContractCallTx",
}

// TypeName returns the transaction type name for tag, or "" if unknown.
func TypeName(tag uint32) string {
	return tagNames[tag]
}
