// Package dataset defines the dataset definitions and transform descriptors
// produced by the data-pipeline compiler. Nothing here evaluates a transform;
// the types only describe a pipeline in the shape the rendering engine reads.
package dataset
