package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/pkg/asset"
	"github.com/dmi3yK/ironfish/pkg/pedersen"
	"github.com/dmi3yK/ironfish/pkg/witness"
)

// contextKey is a custom type for context keys to avoid conflicts
type contextKey string

const startTimeKey contextKey = "start"

func main() {
	var (
		nameS     string
		metadataS string
		nonce     uint8
		value     uint64
		assetKeyS string
		outDir    string
	)

	rootCmd := &cobra.Command{
		Use:   "prover",
		Short: "Generate Groth16 proof of a well-formed asset creation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if assetKeyS == "" {
				_ = godotenv.Load()
				assetKeyS = os.Getenv("ASSET_PUBLIC_KEY")
			}

			publicKey, err := loadPublicKey(assetKeyS)
			if err != nil {
				return err
			}

			name, err := padField("name", nameS, asset.NameLength)
			if err != nil {
				return err
			}
			metadata, err := padField("metadata", metadataS, asset.MetadataLength)
			if err != nil {
				return err
			}
			info, err := asset.NewAssetInfo(name, metadata, nonce, publicKey)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Witness bundle
			// -----------------------------------------------------------------
			valueRandomness, err := pedersen.RandomScalar(rand.Reader)
			if err != nil {
				return err
			}
			keyRandomness, err := pedersen.RandomScalar(rand.Reader)
			if err != nil {
				return err
			}

			bundle, err := witness.Build(info, value, valueRandomness, keyRandomness)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Circuit compile
			// -----------------------------------------------------------------
			cs, err := frontend.Compile(
				circuits.Curve().ScalarField(),
				r1cs.NewBuilder,
				&circuits.AssetCircuit{},
			)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Trusted setup (cached)
			// -----------------------------------------------------------------
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			pkPath := filepath.Join(outDir, "asset_pk.bin")
			vkPath := filepath.Join(outDir, "asset_vk.bin")

			pk := groth16.NewProvingKey(circuits.Curve())
			vk := groth16.NewVerifyingKey(circuits.Curve())

			if pkBytes, err := os.ReadFile(pkPath); err == nil {
				_, _ = pk.ReadFrom(bytes.NewReader(pkBytes))
				vkBytes, _ := os.ReadFile(vkPath)
				_, _ = vk.ReadFrom(bytes.NewReader(vkBytes))
			} else {
				pk, vk, err = groth16.Setup(cs)
				if err != nil {
					return err
				}
				var b bytes.Buffer
				_, _ = pk.WriteTo(&b)
				_ = os.WriteFile(pkPath, b.Bytes(), 0o644)
				b.Reset()
				_, _ = vk.WriteTo(&b)
				_ = os.WriteFile(vkPath, b.Bytes(), 0o644)
			}

			// -----------------------------------------------------------------
			// Prove
			// -----------------------------------------------------------------
			proof, err := groth16.Prove(cs, pk, bundle.Full)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Outputs
			// -----------------------------------------------------------------
			proofPath := filepath.Join(outDir, "asset_proof.bin")
			publicPath := filepath.Join(outDir, "asset_public.json")

			var buf bytes.Buffer
			_, _ = proof.WriteTo(&buf)
			_ = os.WriteFile(proofPath, buf.Bytes(), 0o644)

			jsonBytes, _ := json.MarshalIndent(bundle.Public, "", "  ")
			_ = os.WriteFile(publicPath, jsonBytes, 0o644)

			identifier := info.Identifier()
			fmt.Printf("asset identifier: %x\n", identifier)

			csBuf := new(bytes.Buffer)
			_, _ = cs.WriteTo(csBuf)
			sum := sha256.Sum256(csBuf.Bytes())
			fmt.Printf("circuit hash: %x\n", sum[:4])
			fmt.Printf("proof done in %s\n", time.Since(cmd.Context().Value(startTimeKey).(time.Time)))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&nameS, "name", "", "Asset name (at most 32 bytes, zero padded)")
	rootCmd.Flags().StringVar(&metadataS, "metadata", "", "Asset metadata (at most 76 bytes, zero padded)")
	rootCmd.Flags().Uint8Var(&nonce, "nonce", 0, "Creation nonce")
	rootCmd.Flags().Uint64Var(&value, "value", 0, "Note value to commit to")
	rootCmd.Flags().StringVar(&assetKeyS, "asset-key", "", "Asset public key, 32-byte compressed hex (or ASSET_PUBLIC_KEY env var)")
	rootCmd.Flags().StringVar(&outDir, "outdir", "./", "Output directory")

	rootCmd.SetContext(context.WithValue(context.Background(), startTimeKey, time.Now()))
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadPublicKey decodes a compressed Jubjub point from hex. With no key
// given, a fresh one is derived from a random scalar so the prover can be
// exercised standalone.
func loadPublicKey(s string) (twistededwards.PointAffine, error) {
	var p twistededwards.PointAffine
	if s == "" {
		k, err := pedersen.RandomScalar(rand.Reader)
		if err != nil {
			return p, err
		}
		params := twistededwards.GetEdwardsCurve()
		p.ScalarMultiplication(&params.Base, k)
		fmt.Println("no --asset-key given, generated a throwaway key")
		return p, nil
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return p, fmt.Errorf("decode asset key: %w", err)
	}
	if _, err := p.SetBytes(raw); err != nil {
		return p, fmt.Errorf("decode asset key: %w", err)
	}
	return p, nil
}

func padField(field, s string, length int) ([]byte, error) {
	if len(s) > length {
		return nil, fmt.Errorf("%s must be at most %d bytes, got %d", field, length, len(s))
	}
	out := make([]byte, length)
	copy(out, s)
	return out, nil
}
