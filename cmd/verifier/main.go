package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/spf13/cobra"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/pkg/witness"
)

func main() {
	var proofPath, publicPath, vkPath string

	cmd := &cobra.Command{
		Use:   "verifier",
		Short: "Verify Groth16 proof of a well-formed asset creation",
		RunE: func(cmd *cobra.Command, args []string) error {
			pBytes, err := os.ReadFile(proofPath)
			if err != nil {
				return err
			}
			vBytes, err := os.ReadFile(vkPath)
			if err != nil {
				return err
			}
			jBytes, err := os.ReadFile(publicPath)
			if err != nil {
				return err
			}

			proof := groth16.NewProof(circuits.Curve())
			if _, err := proof.ReadFrom(bytes.NewReader(pBytes)); err != nil {
				return fmt.Errorf("read proof: %w", err)
			}

			vk := groth16.NewVerifyingKey(circuits.Curve())
			if _, err := vk.ReadFrom(bytes.NewReader(vBytes)); err != nil {
				return fmt.Errorf("read verifying key: %w", err)
			}

			var pub witness.PublicInputs
			if err := json.Unmarshal(jBytes, &pub); err != nil {
				return fmt.Errorf("parse public inputs: %w", err)
			}

			pubAssign, err := pub.Assignment()
			if err != nil {
				return err
			}
			pubWit, err := frontend.NewWitness(
				pubAssign,
				circuits.Curve().ScalarField(),
				frontend.PublicOnly(),
			)
			if err != nil {
				return err
			}

			if err := groth16.Verify(proof, vk, pubWit); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			fmt.Println("proof verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "", "asset_proof.bin")
	cmd.Flags().StringVar(&publicPath, "public", "", "asset_public.json")
	cmd.Flags().StringVar(&vkPath, "vk", "", "asset_vk.bin")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("vk")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
