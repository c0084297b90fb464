package ledger

import (
	"github.com/soundclave/sc-broker/internal/domain"
)

// TxMeta is the transaction metadata section of a validated transaction,
// reduced to the ledger-state delta fields the broker inspects.
type TxMeta struct {
	AffectedNodes     []AffectedNode `json:"AffectedNodes"`
	TransactionResult string         `json:"TransactionResult"`
}

// AffectedNode is one entry of a transaction's ledger-state delta
type AffectedNode struct {
	CreatedNode  *NodeDetail `json:"CreatedNode,omitempty"`
	ModifiedNode *NodeDetail `json:"ModifiedNode,omitempty"`
	DeletedNode  *NodeDetail `json:"DeletedNode,omitempty"`
}

// NodeDetail carries the fields of an affected ledger object
type NodeDetail struct {
	LedgerEntryType string      `json:"LedgerEntryType"`
	LedgerIndex     string      `json:"LedgerIndex"`
	NewFields       *NodeFields `json:"NewFields,omitempty"`
	FinalFields     *NodeFields `json:"FinalFields,omitempty"`
	PreviousFields  *NodeFields `json:"PreviousFields,omitempty"`
}

// NodeFields holds the ledger object fields the broker reads
type NodeFields struct {
	NFTokens []NFTokenWrapper `json:"NFTokens,omitempty"`
	Owner    string           `json:"Owner,omitempty"`
}

// NFTokenWrapper wraps one token entry of a token page
type NFTokenWrapper struct {
	NFToken NFToken `json:"NFToken"`
}

// NFToken is a token entry as stored on a token page
type NFToken struct {
	NFTokenID string `json:"NFTokenID"`
	URI       string `json:"URI,omitempty"`
}

const (
	entryTypeTokenPage  = "NFTokenPage"
	entryTypeTokenOffer = "NFTokenOffer"
)

// MintedTokenID locates the token created by a mint transaction by diffing
// the transaction's token-page delta: a brand-new page carries the token in
// its new fields; an existing page carries it in the final token list but
// not the previous one.
func MintedTokenID(meta *TxMeta) (string, error) {
	if meta == nil {
		return "", domain.ErrTokenExtractionFailed
	}

	for _, node := range meta.AffectedNodes {
		if node.CreatedNode == nil || node.CreatedNode.LedgerEntryType != entryTypeTokenPage {
			continue
		}
		if node.CreatedNode.NewFields == nil {
			continue
		}
		for _, wrapped := range node.CreatedNode.NewFields.NFTokens {
			if wrapped.NFToken.NFTokenID != "" {
				return wrapped.NFToken.NFTokenID, nil
			}
		}
	}

	for _, node := range meta.AffectedNodes {
		if node.ModifiedNode == nil || node.ModifiedNode.LedgerEntryType != entryTypeTokenPage {
			continue
		}
		detail := node.ModifiedNode
		if detail.FinalFields == nil {
			continue
		}

		previous := make(map[string]bool)
		if detail.PreviousFields != nil {
			for _, wrapped := range detail.PreviousFields.NFTokens {
				previous[wrapped.NFToken.NFTokenID] = true
			}
		}

		for _, wrapped := range detail.FinalFields.NFTokens {
			if id := wrapped.NFToken.NFTokenID; id != "" && !previous[id] {
				return id, nil
			}
		}
	}

	return "", domain.ErrTokenExtractionFailed
}

// CreatedOfferIndex locates the ledger index of the offer object created by
// an offer transaction.
func CreatedOfferIndex(meta *TxMeta) (string, bool) {
	if meta == nil {
		return "", false
	}
	for _, node := range meta.AffectedNodes {
		if node.CreatedNode != nil && node.CreatedNode.LedgerEntryType == entryTypeTokenOffer {
			return node.CreatedNode.LedgerIndex, true
		}
	}
	return "", false
}

// TokenReceivedBy reports whether the transaction's delta shows the token
// landing on one of the recipient's token pages.
func TokenReceivedBy(meta *TxMeta, tokenID string) bool {
	if meta == nil {
		return false
	}

	for _, node := range meta.AffectedNodes {
		if node.CreatedNode != nil && node.CreatedNode.LedgerEntryType == entryTypeTokenPage &&
			node.CreatedNode.NewFields != nil {
			for _, wrapped := range node.CreatedNode.NewFields.NFTokens {
				if wrapped.NFToken.NFTokenID == tokenID {
					return true
				}
			}
		}

		if node.ModifiedNode != nil && node.ModifiedNode.LedgerEntryType == entryTypeTokenPage &&
			node.ModifiedNode.FinalFields != nil {
			previous := make(map[string]bool)
			if node.ModifiedNode.PreviousFields != nil {
				for _, wrapped := range node.ModifiedNode.PreviousFields.NFTokens {
					previous[wrapped.NFToken.NFTokenID] = true
				}
			}
			for _, wrapped := range node.ModifiedNode.FinalFields.NFTokens {
				if wrapped.NFToken.NFTokenID == tokenID && !previous[tokenID] {
					return true
				}
			}
		}
	}

	return false
}
